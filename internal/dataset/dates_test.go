package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-board/internal/domain"
)

func TestParseDate(t *testing.T) {
	march1 := domain.NewDate(2021, time.March, 1)

	tests := []struct {
		raw  string
		want domain.Date
	}{
		{"", domain.Date{}},
		{"   ", domain.Date{}},
		{"2021-03-01", march1},
		{"2021/03/01", march1},
		{"2021.03.01", march1},
		{"2021-3-1", march1},
		{"2021. 3. 1.", march1},
		{"20210301", march1},
		{"2021-03-01 00:00:00", march1},
		{"2021-03-01 23:59:59", march1},
		{"2021-03-01T18:30:00+09:00", march1},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDate(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			got, err = ParseCellDate(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_Rejects(t *testing.T) {
	for _, raw := range []string{"yesterday", "2021-13-01", "-5", "99999999999", "2021", "44256"} {
		_, err := ParseDate(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseCellDate_Serials(t *testing.T) {
	march1 := domain.NewDate(2021, time.March, 1)

	for _, raw := range []string{"44256", "44256.75", " 44256 "} {
		got, err := ParseCellDate(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, march1, got, raw)
	}

	for _, raw := range []string{"yesterday", "0", "-5", "99999999999"} {
		_, err := ParseCellDate(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, domain.EmploymentStatusActive, ParseStatus("재직 중"))
	assert.Equal(t, domain.EmploymentStatusActive, ParseStatus(" ACTIVE "))
	assert.Equal(t, domain.EmploymentStatusResigned, ParseStatus("퇴사"))
	assert.Equal(t, domain.EmploymentStatusResigned, ParseStatus("Resigned"))
	assert.Equal(t, domain.EmploymentStatusUnknown, ParseStatus("휴직"))
	assert.Equal(t, domain.EmploymentStatusUnknown, ParseStatus(""))
}
