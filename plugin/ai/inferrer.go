package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/nhacviec/nhacviec/plugin/nlp"
)

// Inferrer asks an LLM to resolve a Vietnamese time expression that the
// structured cascade could not match. Every internal failure is returned as
// an error, which the parser treats as "no match" — the inferrer never takes
// the pipeline down.
type Inferrer struct {
	llm LLMService
}

// NewInferrer creates an LLM-backed inference fallback.
func NewInferrer(llm LLMService) *Inferrer {
	return &Inferrer{llm: llm}
}

// inferResponse is the strict JSON shape the model is asked for.
type inferResponse struct {
	// Time is "YYYY-MM-DD HH:mm:ss", or "" when no temporal expression exists.
	Time string `json:"time"`
}

// InferTime resolves text against the reference instant, biased to the future.
func (i *Inferrer) InferTime(ctx context.Context, text string, ref time.Time) (time.Time, error) {
	systemPrompt := fmt.Sprintf(`Bạn là bộ phân giải thời gian cho câu tiếng Việt.

Thời điểm hiện tại: %s (%s)

Trả về DUY NHẤT một JSON object:
{"time": "YYYY-MM-DD HH:mm:ss"}

Quy tắc:
1. Tính thời điểm tuyệt đối so với thời điểm hiện tại.
2. Khi ngày mơ hồ, chọn thời điểm trong tương lai gần nhất.
3. Nếu câu không chứa biểu thức thời gian nào, trả về {"time": ""}.`,
		ref.Format("2006-01-02 15:04:05"), ref.Weekday())

	response, err := i.llm.Chat(ctx, []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: text},
	})
	if err != nil {
		slog.Debug("time inference failed", "error", err)
		return time.Time{}, errors.Wrap(err, "llm inference")
	}

	jsonStr := strings.TrimSpace(response)
	jsonStr = strings.TrimPrefix(jsonStr, "```json")
	jsonStr = strings.TrimPrefix(jsonStr, "```")
	jsonStr = strings.TrimSuffix(jsonStr, "```")

	var resp inferResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		return time.Time{}, errors.Wrapf(err, "malformed inference response: %s", response)
	}
	if resp.Time == "" {
		return time.Time{}, errors.New("no temporal expression recognized")
	}

	t, err := time.ParseInLocation("2006-01-02 15:04:05", resp.Time, ref.Location())
	if err != nil {
		return time.Time{}, errors.Wrap(err, "unparsable inferred time")
	}
	return t, nil
}

var _ nlp.Inferrer = (*Inferrer)(nil)
