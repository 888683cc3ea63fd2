package http

import (
	"net/http"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/ranking"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/response"
)

type RankingHandler interface {
	Chatters(w http.ResponseWriter, r *http.Request)
}

type rankingHandlerImpl struct {
	rankingService ranking.RankingService
}

func NewRankingHandler(rankingService ranking.RankingService) RankingHandler {
	return &rankingHandlerImpl{rankingService: rankingService}
}

func (h *rankingHandlerImpl) Chatters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := ranking.ChattersRequest{
		Team:     q.Get("team"),
		RawDays:  q.Get("days"),
		RawLimit: q.Get("limit"),
	}

	result, err := h.rankingService.Chatters(r.Context(), middleware.CallerFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
