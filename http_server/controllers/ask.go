package controllers

import (
	"context"
	"net/http"

	"github.com/thedevsaddam/govalidator"
	"github.com/voyage-finance/ask-server/models"
	"github.com/voyage-finance/ask-server/service"
)

// MapResult turns the outcome of service.Ask into the HTTP status and body of
// an /api/ask response. Only validation failures are reported precisely.
func MapResult(answer string, err error) (int, models.AnswerResult) {
	if err == nil {
		return http.StatusOK, models.AnswerResult{Answer: answer}
	}
	if service.KindOf(err) == service.KindValidation {
		return http.StatusBadRequest, models.AnswerResult{Error: service.QuestionRequiredMessage}
	}
	return http.StatusInternalServerError, models.AnswerResult{Error: service.GenericErrorMessage}
}

func AskQuestion(s *service.Service) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		var askRequest models.AskRequest
		rules := govalidator.MapData{
			"question": []string{"required"},
		}
		opts := govalidator.Options{
			Request: r,
			Data:    &askRequest,
			Rules:   rules,
		}
		e := govalidator.New(opts).ValidateJSON()
		if len(e) != 0 {
			s.Logger.DebugContext(r.Context(), "rejected ask request", "validationError", e)
			ReturnHttpBadResponse(rw, service.QuestionRequiredMessage)
			return
		}

		// a client that goes away does not cancel the upstream call
		ctx := context.WithoutCancel(r.Context())
		answer, err := s.Ask(ctx, askRequest.Question)
		status, result := MapResult(answer, err)
		ReturnHttpJSON(rw, status, result)
	}
}
