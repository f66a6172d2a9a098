package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"numbered room", "Họp nhóm 14h tại phòng B203", "Phòng B203"},
		{"digit-only room", "Tập hát ở phòng 101 lúc 18h tối nay", "Phòng 101"},
		{"room short form", "Sáng mai họp lúc 10h tại p. 302", "Phòng 302"},
		{"one-digit room falls to place stage", "Học trí tuệ nhân tạo tại phòng A1 lúc 9h", "Phòng A1"},
		{"named room via place stage", "Phỏng vấn lúc 15h tại phòng nhân sự, nhắc trước 20 phút", "Phòng Nhân Sự"},
		{"province", "9h sáng mai lên xe đi bình thuận", "Bình Thuận"},
		{"province multiword", "Về quê hồ chí minh cuối tuần", "Hồ Chí Minh"},
		{"street address", "Đi spa 16h tại 21 nguyen trai", "21 Nguyen Trai"},
		{"address cut before time words", "Tới 217 Hồng Bàng lúc 8h30 sáng mai", "217 Hồng Bàng"},
		{"generic place", "Lấy thuốc ở bệnh viện Chợ Rẫy lúc 7h30 sáng mai", "Bệnh Viện Chợ Rẫy"},
		{"generic place cut at stopword", "Trực lab 17h ngày mai ở tầng 5", "Tầng 5"},
		{"single-word place rejected", "Đến nhà lúc 8h", ""},
		{"no location", "Gặp khách 8h30 hôm nay", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveLocation(tt.input))
		})
	}
}

// Room must win over a generic place phrase in the same sentence.
func TestResolveLocation_CascadeOrder(t *testing.T) {
	got := resolveLocation("Họp ở hội trường lớn tại phòng 302")
	assert.Equal(t, "Phòng 302", got)
}
