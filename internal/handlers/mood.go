package handlers

import (
	"net/http"

	"mood_forge/internal/usecases"

	"go.uber.org/zap"
)

type MoodHandler struct {
	baseHandler
	gate        *usecases.SubmissionGate
	aggregation *usecases.AggregationService
	feedback    *usecases.FeedbackOrchestrator
}

func NewMoodHandler(gate *usecases.SubmissionGate, aggregation *usecases.AggregationService, feedback *usecases.FeedbackOrchestrator, logger *zap.Logger) *MoodHandler {
	return &MoodHandler{
		baseHandler: baseHandler{logger: logger.Named("mood")},
		gate:        gate,
		aggregation: aggregation,
		feedback:    feedback,
	}
}

func (mh *MoodHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	op := "handlers.MoodCheck"
	q := r.URL.Query()

	exists, err := mh.gate.CheckMood(r.Context(), q.Get("user_id"), q.Get("date"))
	if err != nil {
		mh.fail(w, op, err)
		return
	}
	mh.respond(w, op, http.StatusOK, map[string]bool{"exists": exists})
}

func (mh *MoodHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	op := "handlers.MoodSubmit"

	var input usecases.MoodSubmission
	if err := decodeJSON(r, w, &input, false); err != nil {
		mh.badRequest(w, op, err)
		return
	}

	if _, err := mh.gate.SubmitMood(r.Context(), input); err != nil {
		mh.fail(w, op, err)
		return
	}
	mh.respond(w, op, http.StatusCreated, map[string]string{"message": "Mood submitted successfully"})
}

func (mh *MoodHandler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	op := "handlers.MoodWeekly"
	q := r.URL.Query()

	points, err := mh.aggregation.Range(r.Context(), q.Get("user_id"), q.Get("start"), q.Get("end"))
	if err != nil {
		mh.fail(w, op, err)
		return
	}
	mh.respond(w, op, http.StatusOK, map[string]any{"data": points})
}

func (mh *MoodHandler) HandleAll(w http.ResponseWriter, r *http.Request) {
	op := "handlers.MoodAll"

	records, err := mh.aggregation.All(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		mh.fail(w, op, err)
		return
	}
	mh.respond(w, op, http.StatusOK, map[string]any{"data": records})
}

func (mh *MoodHandler) HandleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	op := "handlers.MoodWeeklySummary"

	summary, err := mh.feedback.WeeklySummary(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		if usecases.KindOf(err) == usecases.KindUpstreamUnavailable {
			mh.failWith(w, op, err, http.StatusServiceUnavailable, "AI service unavailable")
			return
		}
		mh.fail(w, op, err)
		return
	}
	mh.respond(w, op, http.StatusOK, map[string]string{"summary": summary})
}

type moodReflectionResponse struct {
	Refleksi string `json:"refleksi"`
	Degraded bool   `json:"degraded,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (mh *MoodHandler) HandleReflection(w http.ResponseWriter, r *http.Request) {
	op := "handlers.MoodReflection"

	result, err := mh.feedback.ReflectionFromLatestMood(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		mh.fail(w, op, err)
		return
	}

	resp := moodReflectionResponse{Refleksi: result.Refleksi, Degraded: result.Degraded}
	if result.Cause != nil {
		resp.Error = usecases.KindOf(result.Cause).String()
	}
	mh.respond(w, op, http.StatusOK, resp)
}
