package handlers

import (
	"errors"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/employee-board/internal/api/dto"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		query dto.StatusBoardQuery
		field string
		want  string
	}{
		{"unknown period", dto.StatusBoardQuery{Period: "bogus"}, "period", "Period must be one of: all year month"},
		{"year required", dto.StatusBoardQuery{Period: "year"}, "year", "Year is required for this period"},
		{"month too large", dto.StatusBoardQuery{Period: "month", Month: 13}, "month", "Month must be at most 12"},
		{"negative year", dto.StatusBoardQuery{Year: -1}, "year", "Year must be at least 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fieldMessages(t, tt.query)
			assert.Equal(t, map[string]string{tt.field: tt.want}, got)
		})
	}
}

func TestDescribe_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				got := fieldMessages(t, dto.StatusBoardQuery{Period: "bogus"})
				assert.Equal(t, "Period must be one of: all year month", got["period"])
			}
		}()
	}
	wg.Wait()
}

func fieldMessages(t *testing.T, query dto.StatusBoardQuery) map[string]string {
	err := validate.Struct(query)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		assert.Fail(t, "expected validation errors", "got %v", err)
		return nil
	}
	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = describe(fe)
	}
	return out
}
