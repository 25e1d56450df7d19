package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// monthValue is a pflag.Value for calendar months in YYYY-MM form.
type monthValue struct {
	year  int
	month time.Month
	set   bool
}

var _ pflag.Value = (*monthValue)(nil)

func (m *monthValue) String() string {
	if !m.set {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", m.year, int(m.month))
}

func (m *monthValue) Set(s string) error {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	m.year = t.Year()
	m.month = t.Month()
	m.set = true
	return nil
}

func (m *monthValue) Type() string { return "month" }
