package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/nimasrn/biztime/internal/repository"
	"github.com/nimasrn/biztime/pkg/pg"
	"github.com/nimasrn/biztime/test/fixtures"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with foreign keys enforced
// and every table migrated.
func SetupTestDB(t *testing.T) *pg.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(repository.Entities()...))

	pgDB := pg.New(db, db)
	t.Cleanup(func() { pgDB.Close() })
	return pgDB
}

// Seed inserts the fixture companies, invoices, industries and associations.
func Seed(t *testing.T, db *pg.DB) {
	ctx := context.Background()
	w := db.Write(ctx)

	for _, c := range fixtures.Companies {
		name := c.Name
		require.NoError(t, w.Create(&repository.CompanyEntity{Code: c.Code, Name: &name, Description: c.Description}).Error)
	}
	for _, inv := range fixtures.Invoices {
		amt := inv.Amt
		e := &repository.InvoiceEntity{
			CompCode: inv.CompCode,
			Amt:      &amt,
			Paid:     inv.Paid,
			AddDate:  repository.NewDate(time.Now().UTC()),
		}
		if inv.PaidDate != "" {
			paid, err := time.Parse("2006-01-02", inv.PaidDate)
			require.NoError(t, err)
			e.PaidDate = repository.NewDate(paid)
		}
		require.NoError(t, w.Create(e).Error)
	}
	for _, ind := range fixtures.Industries {
		label := ind.Industry
		require.NoError(t, w.Create(&repository.IndustryEntity{Code: ind.Code, Industry: &label}).Error)
	}
	for _, a := range fixtures.Associations {
		require.NoError(t, w.Create(&repository.CompanyIndustryEntity{CompanyCode: a[0], IndustryCode: a[1]}).Error)
	}
}

// Client talks to a handler served over an in-memory listener.
type Client struct {
	t      *testing.T
	client *fasthttp.Client
}

// Serve starts handler on an in-memory listener until the test ends.
func Serve(t *testing.T, handler fasthttp.RequestHandler) *Client {
	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{Handler: handler}
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() {
		_ = srv.Shutdown()
		_ = ln.Close()
	})

	return &Client{
		t: t,
		client: &fasthttp.Client{
			Dial: func(addr string) (net.Conn, error) { return ln.Dial() },
		},
	}
}

// Response is a decoded reply.
type Response struct {
	Status int
	Header map[string]string
	Body   []byte
}

func (r Response) JSON(t *testing.T, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, dst), string(r.Body))
}

// Do sends method path with body encoded as JSON when it is not nil.
func (c *Client) Do(method, path string, body any) Response {
	c.t.Helper()
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI("http://biztime.test" + path)
	if body != nil {
		var raw []byte
		switch b := body.(type) {
		case []byte:
			raw = b
		case string:
			raw = []byte(b)
		default:
			var err error
			raw, err = json.Marshal(b)
			require.NoError(c.t, err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(raw)
	}

	require.NoError(c.t, c.client.DoTimeout(req, resp, 5*time.Second))

	headers := make(map[string]string)
	resp.Header.VisitAll(func(k, v []byte) {
		headers[string(k)] = string(v)
	})
	return Response{
		Status: resp.StatusCode(),
		Header: headers,
		Body:   bytes.Clone(resp.Body()),
	}
}
