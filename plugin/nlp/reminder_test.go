package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractReminder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"full unit", "đi khám bệnh lúc 9h, nhắc trước 30 phút", 30},
		{"short unit", "học dự án, nhắc tôi trước 1p", 1},
		{"min unit", "họp nhóm, nhắc 15 min", 15},
		{"three digits", "nhắc trước 120 phút", 120},
		{"no phrase", "họp nhóm 14h tại phòng B203", 0},
		{"keyword without count", "nhắc tôi đi họp lúc 9h", 0},
		{"four digits rejected", "nhắc trước 1000 phút", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractReminder(Normalize(tt.input)))
		})
	}
}
