package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"sync"
	"testing"

	"smartedybot/internal/service"
	"smartedybot/internal/testutil"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

// apiCall is one request received by the fake Bot API
type apiCall struct {
	Method   string
	Params   map[string]string
	FileSize int64
}

// fakeTelegram answers Bot API calls and records them
type fakeTelegram struct {
	mu    sync.Mutex
	calls []apiCall
	fail  map[string]bool
}

func (f *fakeTelegram) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	call := apiCall{Method: path.Base(r.URL.Path), Params: map[string]string{}}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(32 << 20); err == nil {
			for k, v := range r.MultipartForm.Value {
				call.Params[k] = v[0]
			}
			for _, files := range r.MultipartForm.File {
				call.FileSize += files[0].Size
			}
		}
	} else {
		var raw map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&raw)
		for k, v := range raw {
			call.Params[k] = fmt.Sprint(v)
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	fail := f.fail[call.Method]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if fail {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"ok":false,"error_code":400,"description":"Bad Request: simulated failure"}`)
		return
	}

	switch call.Method {
	case "answerCallbackQuery":
		fmt.Fprint(w, `{"ok":true,"result":true}`)
	default:
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":10,"date":1700000000,"chat":{"id":100,"type":"private"}}}`)
	}
}

// Calls returns a copy of the recorded calls
func (f *fakeTelegram) Calls() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiCall(nil), f.calls...)
}

// Methods returns the recorded method names in order
func (f *fakeTelegram) Methods() []string {
	var methods []string
	for _, c := range f.Calls() {
		methods = append(methods, c.Method)
	}
	return methods
}

type harness struct {
	bot       *tele.Bot
	api       *fakeTelegram
	provider  *testutil.MockPaymentProvider
	completer *testutil.MockCompleter
	renderer  *testutil.MockRenderer
	documents *service.DocumentService
	errors    []error
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		api:       &fakeTelegram{fail: map[string]bool{}},
		provider:  new(testutil.MockPaymentProvider),
		completer: new(testutil.MockCompleter),
		renderer:  new(testutil.MockRenderer),
	}

	srv := httptest.NewServer(h.api)
	t.Cleanup(srv.Close)

	bot, err := tele.NewBot(tele.Settings{
		URL:         srv.URL,
		Token:       "test-token",
		Offline:     true,
		Synchronous: true,
		OnError: func(err error, _ tele.Context) {
			h.errors = append(h.errors, err)
		},
	})
	require.NoError(t, err)
	h.bot = bot

	logger := testutil.NewTestLogger()
	h.documents = service.NewDocumentService(h.renderer, t.TempDir(), logger)

	handler := NewHandler(
		bot,
		service.NewCheckoutService(h.provider, nil, logger),
		service.NewCompletionService(h.completer, logger),
		h.documents,
		logger,
	)
	handler.RegisterHandlers()

	return h
}

// renderWritesFile makes the mock renderer produce a real file
func (h *harness) renderWritesFile() {
	h.renderer.On("Render", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			_ = testutil.WriteFile(args.String(1))
		}).
		Return(nil)
}

func testUser(lang string) *tele.User {
	return &tele.User{ID: 42, FirstName: "Anna", Username: "anna", LanguageCode: lang}
}

func testChat() *tele.Chat {
	return &tele.Chat{ID: 100, Type: tele.ChatPrivate}
}

func textUpdate(user *tele.User, text string) tele.Update {
	return tele.Update{
		ID: 1,
		Message: &tele.Message{
			ID:     1,
			Sender: user,
			Chat:   testChat(),
			Text:   text,
		},
	}
}

func callbackUpdate(user *tele.User, data string) tele.Update {
	return tele.Update{
		ID: 2,
		Callback: &tele.Callback{
			ID:      "cb-1",
			Sender:  user,
			Message: &tele.Message{ID: 5, Chat: testChat()},
			Data:    data,
		},
	}
}
