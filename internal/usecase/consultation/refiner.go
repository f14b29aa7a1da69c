package consultation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
	pkgai "github.com/clinicscribe-team/clinic-scribe/pkg/ai"
)

const refinerProtocolPromptFmt = `Bạn là một bác sĩ chuyên khoa. Hãy hoàn thiện kế hoạch điều trị (Plan) dựa trên phác đồ chính thức dưới đây.

Nguồn phác đồ: %s
Hướng dẫn điều trị: %s

Trả về JSON:
{
  "plan": "...",
  "medical_advice": "...",
  "protocol_source": "..."
}
Trường "protocol_source" phải ghi lại đúng nguồn phác đồ ở trên.`

const refinerFallbackPrompt = `Bạn là một bác sĩ chuyên khoa. Dựa trên thông tin S/O/A và chẩn đoán dưới đây, hãy đề xuất kế hoạch điều trị và lời khuyên y tế.

Trả về JSON:
{
  "plan": "...",
  "medical_advice": "..."
}`

// Refiner finalizes the draft's plan and medical advice, grounded in a
// resolved treatment protocol when one is available
type Refiner struct {
	llm         LLM
	temperature float64
	logger      *zap.Logger
}

// NewRefiner creates a plan refiner
func NewRefiner(llm LLM, temperature float64, logger *zap.Logger) *Refiner {
	return &Refiner{llm: llm, temperature: temperature, logger: logger}
}

// Refine mutates draft in place. Skipped entirely when the draft carries
// neither a diagnosis nor ICD codes. The protocol-grounded path keeps the
// draft's defaults on an unparseable response; the fallback path instead uses
// the raw response verbatim as the plan. Transport failures propagate.
func (r *Refiner) Refine(ctx context.Context, draft *entities.ConsultationDraft, protocol *entities.MedicalProtocol) error {
	if !draft.HasDiagnosis() {
		return nil
	}

	if protocol != nil {
		return r.refineWithProtocol(ctx, draft, protocol)
	}
	return r.refineFallback(ctx, draft)
}

func (r *Refiner) refineWithProtocol(ctx context.Context, draft *entities.ConsultationDraft, protocol *entities.MedicalProtocol) error {
	systemPrompt := fmt.Sprintf(refinerProtocolPromptFmt, protocol.Authority, protocol.PlanGuidelines)

	content, err := r.llm.ChatCompletion(ctx, pkgai.ChatRequest{
		Messages: []pkgai.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: draftSummary(draft)},
		},
		Temperature: r.temperature,
	})
	if err != nil {
		return err
	}

	var parsed struct {
		Plan           string `json:"plan"`
		MedicalAdvice  string `json:"medical_advice"`
		ProtocolSource string `json:"protocol_source"`
	}

	span, ok := ExtractJSONObject(content)
	if !ok {
		if r.logger != nil {
			r.logger.Warn("protocol refinement response contained no JSON object, keeping draft defaults",
				zap.String("protocol_id", protocol.ID),
			)
		}
		return nil
	}
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		if r.logger != nil {
			r.logger.Warn("failed to parse protocol refinement response, keeping draft defaults",
				zap.String("protocol_id", protocol.ID),
				zap.Error(err),
			)
		}
		return nil
	}

	if parsed.Plan != "" {
		draft.Plan = parsed.Plan
	}
	if parsed.MedicalAdvice != "" {
		draft.MedicalAdvice = parsed.MedicalAdvice
	}
	if parsed.ProtocolSource != "" {
		draft.ProtocolSource = parsed.ProtocolSource
	} else {
		draft.ProtocolSource = protocol.Authority
	}

	return nil
}

func (r *Refiner) refineFallback(ctx context.Context, draft *entities.ConsultationDraft) error {
	content, err := r.llm.ChatCompletion(ctx, pkgai.ChatRequest{
		Messages: []pkgai.ChatMessage{
			{Role: "system", Content: refinerFallbackPrompt},
			{Role: "user", Content: draftSummary(draft)},
		},
		Temperature: r.temperature,
	})
	if err != nil {
		return err
	}

	var parsed struct {
		Plan          string `json:"plan"`
		MedicalAdvice string `json:"medical_advice"`
	}

	span, ok := ExtractJSONObject(content)
	if ok && json.Unmarshal([]byte(span), &parsed) == nil && parsed.Plan != "" {
		draft.Plan = parsed.Plan
		if parsed.MedicalAdvice != "" {
			draft.MedicalAdvice = parsed.MedicalAdvice
		}
		return nil
	}

	// Best-effort degradation: the ungrounded path keeps the raw text as the
	// plan rather than discarding the response
	if r.logger != nil {
		r.logger.Warn("failed to parse fallback refinement response, using raw text as plan")
	}
	draft.Plan = content
	return nil
}

// draftSummary renders the S/O/A sections and diagnosis as the user message
// for refinement calls
func draftSummary(draft *entities.ConsultationDraft) string {
	var b strings.Builder
	b.WriteString("Subjective: " + draft.Subjective + "\n")
	b.WriteString("Objective: " + draft.Objective + "\n")
	b.WriteString("Assessment: " + draft.Assessment + "\n")
	b.WriteString("Chẩn đoán: " + draft.Diagnosis)
	if len(draft.ICDCodes) > 0 {
		b.WriteString(" (" + strings.Join(draft.ICDCodes, ", ") + ")")
	}
	return b.String()
}
