package globals_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	"github.com/dalemusser/folio/internal/app/features/globals"
	globalstore "github.com/dalemusser/folio/internal/app/store/globals"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/dalemusser/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*globals.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	h := globals.NewHandler(db, mediaurl.NewResolver(mediaurl.Mode{ForceProxyReads: true}, nil), mediaurl.Env{},
		uierrors.NewErrorLogger(logger), logger)
	return h, testutil.NewFixtures(t, db)
}

func serve(t *testing.T, h *globals.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	globals.Routes(h).ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("%s: status got %d, want 200; body=%s", path, rec.Code, rec.Body.String())
	}
	return rec
}

func TestServeHeader_DefaultsToEmptyNav(t *testing.T) {
	h, _ := newHandler(t)

	rec := serve(t, h, "/header")
	if got := strings.TrimSpace(rec.Body.String()); got != `{"nav_items":[]}` {
		t.Errorf("body: got %s", got)
	}
}

func TestServeHeader_Saved(t *testing.T) {
	h, _ := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := h.Globals.SaveHeader(ctx, models.Header{NavItems: []models.Link{{Label: "Work", URL: "/projects"}}})
	if err != nil {
		t.Fatalf("SaveHeader failed: %v", err)
	}

	var body struct {
		NavItems []models.Link `json:"nav_items"`
	}
	if err := json.Unmarshal(serve(t, h, "/header").Body.Bytes(), &body); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(body.NavItems) != 1 || body.NavItems[0].Label != "Work" {
		t.Errorf("nav: got %+v", body.NavItems)
	}
}

type footerBody struct {
	Subscribe struct {
		ShowSubscribe bool `json:"show_subscribe"`
	} `json:"subscribe"`
	LinkGroups  []models.LinkGroup `json:"link_groups"`
	SocialLinks []struct {
		Label string `json:"label"`
		Icon  string `json:"icon"`
	} `json:"social_links"`
}

func TestServeFooter_DefaultShowsSubscribe(t *testing.T) {
	h, _ := newHandler(t)

	var body footerBody
	if err := json.Unmarshal(serve(t, h, "/footer").Body.Bytes(), &body); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if !body.Subscribe.ShowSubscribe {
		t.Error("unsaved footer should show the subscribe form")
	}
	if body.LinkGroups == nil || body.SocialLinks == nil {
		t.Error("lists should be empty, not null")
	}
}

func TestServeFooter_ResolvesSocialIcons(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	icon := fixtures.CreateMedia(ctx, "vimeo.png", "https://acct.r2.cloudflarestorage.com/site/vimeo.png")
	missing := primitive.NewObjectID()
	err := h.Globals.SaveFooter(ctx, models.Footer{
		SocialLinks: []models.SocialLink{
			{Label: "Vimeo", URL: "https://vimeo.com/erin", IconID: &icon.ID},
			{Label: "Mail", URL: "mailto:erin@site.test", IconID: &missing},
		},
	})
	if err != nil {
		t.Fatalf("SaveFooter failed: %v", err)
	}

	var body footerBody
	if err := json.Unmarshal(serve(t, h, "/footer").Body.Bytes(), &body); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(body.SocialLinks) != 2 {
		t.Fatalf("social links: got %+v", body.SocialLinks)
	}
	if !strings.HasPrefix(body.SocialLinks[0].Icon, "/api/media/file/vimeo.png") {
		t.Errorf("icon should be served through the proxy, got %q", body.SocialLinks[0].Icon)
	}
	if body.SocialLinks[1].Icon != "" {
		t.Errorf("missing icon should be dropped, got %q", body.SocialLinks[1].Icon)
	}
	if body.Subscribe.ShowSubscribe {
		t.Error("saved footer controls the subscribe flag")
	}
}

func TestSaveFooter_RejectsEmptyGroup(t *testing.T) {
	h, _ := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := h.Globals.SaveFooter(ctx, models.Footer{LinkGroups: []models.LinkGroup{{Header: "Site"}}})
	if err == nil || !strings.Contains(err.Error(), globalstore.ErrInvalidGlobal.Error()) {
		t.Errorf("expected invalid global error, got %v", err)
	}
}
