package consultation

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	apperrors "github.com/clinicscribe-team/clinic-scribe/errors"
	pkgai "github.com/clinicscribe-team/clinic-scribe/pkg/ai"
)

const composerSystemPrompt = `Bạn là một hệ thống đa tác nhân (Multi-agent System) chuyên nghiệp dành cho bác sĩ.
Bạn phải phân tích nội dung cuộc hội thoại dựa trên 3 vai trò chuyên biệt:

1. **Scribe Agent**: Tóm tắt nội dung hội thoại chính xác vào mẫu SOAP (Subjective, Objective, Assessment, Plan).
2. **ICD Classifier**: Tra cứu và gán tối đa 3 mã ICD-10 phù hợp nhất với chuẩn đoán.
3. **Medical Expert**: Phân tích rủi ro, dự đoán tiến triển và đưa ra lời khuyên y tế (Medical Advice) dựa trên bằng chứng y khoa.

Nếu một trường chưa đủ thông tin từ hội thoại, hãy điền đúng chuỗi "Đang cập nhật" thay vì bỏ trống.
Luôn trả về đầy đủ tất cả các trường.

Yêu cầu đầu ra JSON:
{
  "subjective": "...",
  "objective": "...",
  "assessment": "...",
  "plan": "...",
  "diagnosis": "...",
  "icd_codes": ["..."],
  "medical_advice": "...",
  "risk_assessment": "..."
}`

// DraftPayload is the raw field set the drafting model returns. ICDCodes is
// left untyped on purpose: the model sometimes emits a comma-joined string
// instead of an array, and the caller normalizes it at the boundary.
type DraftPayload struct {
	Subjective     string `json:"subjective"`
	Objective      string `json:"objective"`
	Assessment     string `json:"assessment"`
	Plan           string `json:"plan"`
	Diagnosis      string `json:"diagnosis"`
	ICDCodes       any    `json:"icd_codes"`
	MedicalAdvice  string `json:"medical_advice"`
	RiskAssessment string `json:"risk_assessment"`
}

// Composer produces a structured SOAP draft from a consultation transcript
type Composer struct {
	llm         LLM
	temperature float64
	logger      *zap.Logger
}

// NewComposer creates a draft composer
func NewComposer(llm LLM, temperature float64, logger *zap.Logger) *Composer {
	return &Composer{llm: llm, temperature: temperature, logger: logger}
}

// Compose sends the transcript to the drafting model and parses the first
// balanced JSON object out of its response. Commentary around the JSON is
// tolerated; an unparseable response yields an empty payload and a log line,
// never an error. Transport failures propagate.
func (c *Composer) Compose(ctx context.Context, transcript, contextInfo string) (*DraftPayload, error) {
	if transcript == "" {
		return nil, apperrors.ErrMissingTranscript()
	}

	if contextInfo == "" {
		contextInfo = "Không có"
	}

	userPrompt := "Nội dung cuộc hội thoại:\n\"" + transcript + "\"\n\nThông tin thêm: " + contextInfo

	content, err := c.llm.ChatCompletion(ctx, pkgai.ChatRequest{
		Messages: []pkgai.ChatMessage{
			{Role: "system", Content: composerSystemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return nil, err
	}

	payload := &DraftPayload{}

	span, ok := ExtractJSONObject(content)
	if !ok {
		if c.logger != nil {
			c.logger.Warn("draft response contained no JSON object, using defaults",
				zap.Int("response_length", len(content)),
			)
		}
		return payload, nil
	}

	if err := json.Unmarshal([]byte(span), payload); err != nil {
		if c.logger != nil {
			c.logger.Warn("failed to parse draft response, using defaults",
				zap.Error(err),
			)
		}
		return &DraftPayload{}, nil
	}

	return payload, nil
}
