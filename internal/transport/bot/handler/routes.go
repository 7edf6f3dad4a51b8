package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"neetup/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, advisorIDs []int64) {
	advisors := bh.Group(th.AnyMessage())
	advisors.Use(middleware.AdvisorOnly(advisorIDs...))

	advisors.HandleMessage(h.OnStart, th.Or(th.CommandEqual("start"), th.CommandEqual("help")))
	advisors.HandleMessage(h.OnStatements, th.CommandEqual("statements"))
	advisors.HandleMessage(h.OnScore, th.CommandEqual("score"))
	advisors.HandleMessage(h.OnAssessment, th.CommandEqual("assessment"))
	advisors.HandleMessage(h.OnHistory, th.CommandEqual("history"))
}
