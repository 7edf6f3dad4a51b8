package notifier_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"neetup/internal/domain/entity"
	"neetup/internal/infrastructure/notifier"
)

const testToken = "123456789:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw0"

func testAssessment() *entity.Assessment {
	return &entity.Assessment{
		ID:     "csm1u2jvb1ig00c4o2a0",
		UserID: "<script>",
		Result: entity.RankedResult{Areas: []entity.CareerAreaScore{
			{Area: entity.CareerAreaUIUXDesigner, Score: 21},
			{Area: entity.CareerAreaDataScience, Score: 19},
		}},
		Source:    entity.ScoreSourceLocal,
		CreatedAt: time.Date(2026, 10, 3, 9, 0, 0, 0, time.UTC),
	}
}

func TestFormatAssessment(t *testing.T) {
	rq := require.New(t)

	text := notifier.FormatAssessment(testAssessment())

	rq.Contains(text, "<b>Recommended:</b> UI/UX Designer (21)")
	rq.Contains(text, "<b>Also close:</b> Data Science (19)")
	rq.Contains(text, "<b>Scored:</b> local")
	rq.Contains(text, "<code>&lt;script&gt;</code>")
	rq.NotContains(text, "<script>")

	single := testAssessment()
	single.Result.Areas = single.Result.Areas[:1]

	rq.NotContains(notifier.FormatAssessment(single), "Also close")
}

func TestTelegramBotSendAssessment(t *testing.T) {
	rq := require.New(t)

	var (
		gotPath string
		gotBody string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":1759482000,"chat":{"id":-100500,"type":"supergroup"}}}`))
	}))
	defer server.Close()

	bot, err := notifier.NewTelegramBot(
		testToken,
		-100500,
		telego.WithAPIServer(server.URL),
		telego.WithHTTPClient(server.Client()),
		telego.WithDiscardLogger(),
	)
	rq.NoError(err)

	rq.NoError(bot.SendAssessment(context.Background(), testAssessment()))

	rq.True(strings.HasSuffix(gotPath, "/sendMessage"), gotPath)
	rq.Contains(gotBody, `"chat_id":-100500`)
	rq.Contains(gotBody, `"parse_mode":"HTML"`)
	rq.Contains(gotBody, "UI/UX Designer (21)")
}

func TestTelegramBotSendFailure(t *testing.T) {
	rq := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer server.Close()

	bot, err := notifier.NewTelegramBot(
		testToken,
		-1,
		telego.WithAPIServer(server.URL),
		telego.WithHTTPClient(server.Client()),
		telego.WithDiscardLogger(),
	)
	rq.NoError(err)

	rq.Error(bot.SendAssessment(context.Background(), testAssessment()))
}

func TestNewTelegramBotInvalidToken(t *testing.T) {
	rq := require.New(t)

	_, err := notifier.NewTelegramBot("not-a-token", 1)
	rq.Error(err)
}
