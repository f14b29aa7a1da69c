package consultation

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
	pkgai "github.com/clinicscribe-team/clinic-scribe/pkg/ai"
)

// stubLLM replays canned responses in call order
type stubLLM struct {
	responses []string
	err       error
	requests  []pkgai.ChatRequest
}

func (s *stubLLM) ChatCompletion(_ context.Context, req pkgai.ChatRequest) (string, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	idx := len(s.requests) - 1
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return s.responses[idx], nil
}

type stubTranscriber struct {
	text string
	err  error
}

func (s *stubTranscriber) TranscribeAudio(_ context.Context, _ string, _ io.Reader) (string, error) {
	return s.text, s.err
}

type stubStorage struct {
	uploads   []string
	uploadErr error
	url       string
	urlErr    error
}

func (s *stubStorage) UploadFile(_ context.Context, objectName string, _ io.Reader, _ int64, _ string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.uploads = append(s.uploads, objectName)
	return nil
}

func (s *stubStorage) GetFileURL(_ context.Context, _ string, _ time.Duration) (string, error) {
	return s.url, s.urlErr
}

func newTestService(llm *stubLLM, transcriber Transcriber) Service {
	return NewService(llm, transcriber, nil, nil, zap.NewNop())
}

func TestAnalyze_ExtractsEmbeddedJSON(t *testing.T) {
	llm := &stubLLM{responses: []string{
		`Here is the result: {"subjective":"đau đầu","icd_codes":["R51"]}`,
		`{"plan":"theo dõi tại nhà","medical_advice":"nghỉ ngơi, uống đủ nước"}`,
	}}
	svc := newTestService(llm, nil)

	draft, err := svc.Analyze(context.Background(), "bệnh nhân kêu đau đầu", "")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if draft.Subjective != "đau đầu" {
		t.Fatalf("unexpected subjective: %s", draft.Subjective)
	}
	if draft.Diagnosis != entities.PlaceholderPending {
		t.Fatalf("expected diagnosis sentinel, got %s", draft.Diagnosis)
	}
	if len(draft.ICDCodes) != 1 || draft.ICDCodes[0] != "R51" {
		t.Fatalf("unexpected icd codes: %v", draft.ICDCodes)
	}
	// R51 has no protocol, refinement went through the ungrounded path
	if draft.Plan != "theo dõi tại nhà" {
		t.Fatalf("unexpected plan: %s", draft.Plan)
	}
	if len(llm.requests) != 2 {
		t.Fatalf("expected 2 model calls, got %d", len(llm.requests))
	}
}

func TestAnalyze_NoJSONSpanKeepsAllSentinels(t *testing.T) {
	llm := &stubLLM{responses: []string{"xin lỗi, tôi không thể phân tích nội dung này"}}
	svc := newTestService(llm, nil)

	draft, err := svc.Analyze(context.Background(), "nội dung không rõ", "")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	for name, got := range map[string]string{
		"subjective":      draft.Subjective,
		"objective":       draft.Objective,
		"assessment":      draft.Assessment,
		"plan":            draft.Plan,
		"diagnosis":       draft.Diagnosis,
		"medical_advice":  draft.MedicalAdvice,
		"risk_assessment": draft.RiskAssessment,
	} {
		if got != entities.PlaceholderPending {
			t.Fatalf("field %s lost its sentinel: %s", name, got)
		}
	}
	if len(draft.ICDCodes) != 0 {
		t.Fatalf("expected no icd codes, got %v", draft.ICDCodes)
	}
	// No diagnosis, refinement must be skipped entirely
	if len(llm.requests) != 1 {
		t.Fatalf("expected 1 model call, got %d", len(llm.requests))
	}
}

func TestAnalyze_EmptyTranscriptRejected(t *testing.T) {
	svc := newTestService(&stubLLM{responses: []string{"{}"}}, nil)

	if _, err := svc.Analyze(context.Background(), "   ", ""); err == nil {
		t.Fatal("expected an error for empty transcript")
	}
}

func TestAnalyze_TransportErrorPropagates(t *testing.T) {
	llm := &stubLLM{err: fmt.Errorf("connection refused")}
	svc := newTestService(llm, nil)

	if _, err := svc.Analyze(context.Background(), "bệnh nhân đau bụng", ""); err == nil {
		t.Fatal("expected transport error to propagate")
	}
}

func TestAnalyze_FallbackRefinementUsesRawTextAsPlan(t *testing.T) {
	llm := &stubLLM{responses: []string{
		`{"subjective":"mệt mỏi","diagnosis":"cảm cúm thông thường"}`,
		"Kế hoạch: theo dõi thêm.",
	}}
	svc := newTestService(llm, nil)

	draft, err := svc.Analyze(context.Background(), "bệnh nhân thấy mệt", "")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if draft.Plan != "Kế hoạch: theo dõi thêm." {
		t.Fatalf("expected raw response as plan, got %s", draft.Plan)
	}
}

func TestAnalyze_ProtocolPathGroundsThePlan(t *testing.T) {
	llm := &stubLLM{responses: []string{
		`{"subjective":"đau đầu, chóng mặt","diagnosis":"tăng huyết áp","icd_codes":["I10"]}`,
		`{"plan":"giảm muối, khởi trị thuốc hạ áp","medical_advice":"đo huyết áp hằng ngày"}`,
	}}
	svc := newTestService(llm, nil)

	draft, err := svc.Analyze(context.Background(), "bệnh nhân đau đầu chóng mặt", "")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if draft.Plan != "giảm muối, khởi trị thuốc hạ áp" {
		t.Fatalf("unexpected plan: %s", draft.Plan)
	}
	// The model omitted protocol_source, the protocol's authority fills it
	if !strings.Contains(draft.ProtocolSource, "Bộ Y tế") {
		t.Fatalf("expected authority attribution, got %s", draft.ProtocolSource)
	}
	// The grounding prompt must embed the guidelines verbatim
	refinerPrompt := llm.requests[1].Messages[0].Content
	if !strings.Contains(refinerPrompt, "giảm muối dưới 5g/ngày") {
		t.Fatal("protocol guidelines missing from refinement prompt")
	}
}

func TestAnalyze_ProtocolPathKeepsDefaultsOnParseFailure(t *testing.T) {
	llm := &stubLLM{responses: []string{
		`{"diagnosis":"tăng huyết áp","icd_codes":["I10"],"plan":"kế hoạch sơ bộ"}`,
		"không thể tạo kế hoạch",
	}}
	svc := newTestService(llm, nil)

	draft, err := svc.Analyze(context.Background(), "bệnh nhân tăng huyết áp", "")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	// Unlike the fallback path, the protocol path keeps what the draft had
	if draft.Plan != "kế hoạch sơ bộ" {
		t.Fatalf("protocol path should keep the draft plan, got %s", draft.Plan)
	}
	if draft.ProtocolSource != "" {
		t.Fatalf("protocol source should stay empty on parse failure, got %s", draft.ProtocolSource)
	}
}

func TestTranscribe_TagsSpeakerTurns(t *testing.T) {
	llm := &stubLLM{responses: []string{
		`{"segments":[{"role":"doctor","text":"Anh thấy đau ở đâu?"},{"role":"patient","text":"Tôi đau bụng."},{"role":"nurse","text":"Mời anh ngồi."}]}`,
	}}
	transcriber := &stubTranscriber{text: "Anh thấy đau ở đâu? Tôi đau bụng."}
	svc := newTestService(llm, transcriber)

	result, err := svc.Transcribe(context.Background(), "recording.webm", "audio/webm", strings.NewReader("fake-audio"))
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}

	if result.RawText != "Anh thấy đau ở đâu? Tôi đau bụng." {
		t.Fatalf("raw text lost: %s", result.RawText)
	}
	if len(result.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(result.Segments))
	}
	if result.Segments[0].Speaker != entities.SpeakerDoctor {
		t.Fatalf("expected doctor, got %s", result.Segments[0].Speaker)
	}
	if result.Segments[1].Speaker != entities.SpeakerPatient {
		t.Fatalf("expected patient, got %s", result.Segments[1].Speaker)
	}
	// Unknown roles default to patient
	if result.Segments[2].Speaker != entities.SpeakerPatient {
		t.Fatalf("unknown role should map to patient, got %s", result.Segments[2].Speaker)
	}
}

func TestTranscribe_SegmentParseFailureKeepsRawText(t *testing.T) {
	llm := &stubLLM{responses: []string{"đây không phải JSON"}}
	transcriber := &stubTranscriber{text: "bệnh nhân kêu đau đầu"}
	svc := newTestService(llm, transcriber)

	result, err := svc.Transcribe(context.Background(), "recording.webm", "audio/webm", strings.NewReader("fake-audio"))
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}
	if result.RawText != "bệnh nhân kêu đau đầu" {
		t.Fatalf("raw text lost: %s", result.RawText)
	}
	if len(result.Segments) != 0 {
		t.Fatalf("expected empty segments, got %v", result.Segments)
	}
}

func TestTranscribe_ReturnsRecordingURL(t *testing.T) {
	llm := &stubLLM{responses: []string{`{"segments":[]}`}}
	transcriber := &stubTranscriber{text: "bệnh nhân kêu đau đầu"}
	store := &stubStorage{url: "https://minio.example.com/clinic-recordings/recordings/abc-recording.webm"}
	svc := NewService(llm, transcriber, store, nil, zap.NewNop())

	result, err := svc.Transcribe(context.Background(), "recording.webm", "audio/webm", strings.NewReader("fake-audio"))
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}

	if len(store.uploads) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(store.uploads))
	}
	if !strings.HasPrefix(store.uploads[0], "recordings/") || !strings.HasSuffix(store.uploads[0], "-recording.webm") {
		t.Fatalf("unexpected object name: %s", store.uploads[0])
	}
	if result.RecordingURL != store.url {
		t.Fatalf("expected recording URL %s, got %s", store.url, result.RecordingURL)
	}
}

func TestTranscribe_ArchivalFailureStillTranscribes(t *testing.T) {
	llm := &stubLLM{responses: []string{`{"segments":[]}`}}
	transcriber := &stubTranscriber{text: "bệnh nhân kêu đau đầu"}
	store := &stubStorage{uploadErr: fmt.Errorf("bucket unavailable")}
	svc := NewService(llm, transcriber, store, nil, zap.NewNop())

	result, err := svc.Transcribe(context.Background(), "recording.webm", "audio/webm", strings.NewReader("fake-audio"))
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}
	if result.RawText != "bệnh nhân kêu đau đầu" {
		t.Fatalf("transcript lost: %s", result.RawText)
	}
	if result.RecordingURL != "" {
		t.Fatalf("no recording URL expected after failed upload, got %s", result.RecordingURL)
	}
}

func TestTranscribe_EmptyAudioRejected(t *testing.T) {
	svc := newTestService(&stubLLM{responses: []string{"{}"}}, &stubTranscriber{text: "x"})

	if _, err := svc.Transcribe(context.Background(), "recording.webm", "audio/webm", strings.NewReader("")); err == nil {
		t.Fatal("expected an error for empty audio")
	}
	if _, err := svc.Transcribe(context.Background(), "recording.webm", "audio/webm", nil); err == nil {
		t.Fatal("expected an error for nil audio")
	}
}

func TestNormalizeICDCodes(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want []string
	}{
		{"nil", nil, []string{}},
		{"array", []interface{}{"I10", " J02.9 ", ""}, []string{"I10", "J02.9"}},
		{"comma string", "I10, J02.9,E11", []string{"I10", "J02.9", "E11"}},
		{"string slice", []string{" I10 "}, []string{"I10"}},
		{"empty string", "", []string{}},
		{"non string items", []interface{}{42, "I10"}, []string{"I10"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeICDCodes(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v want %v", got, tc.want)
				}
			}
		})
	}
}
