package repository

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/nimasrn/biztime/internal/model"
)

// Date is a nullable DATE column. Postgres hands back time.Time while
// sqlite may return the text form, both are accepted.
type Date struct {
	Time  time.Time
	Valid bool
}

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{Time: v, Valid: true}
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	}
	return fmt.Errorf("repository: cannot scan %T into Date", value)
}

func (d *Date) parse(s string) error {
	if len(s) > len(model.DateLayout) {
		s = s[:len(model.DateLayout)]
	}
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return err
	}
	*d = Date{Time: t, Valid: true}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time.Format(model.DateLayout), nil
}

func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(model.DateLayout)
}

func (d Date) Ptr() *string {
	if !d.Valid {
		return nil
	}
	s := d.String()
	return &s
}

func NewDate(t time.Time) Date {
	return Date{Time: t, Valid: true}
}
