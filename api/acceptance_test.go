package api

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/fulldump/gamedb/parser"
	"github.com/fulldump/gamedb/service"
)

type JSON = map[string]interface{}

func TestUnavailable(t *testing.T) {

	// The service never loads, so every request is rejected
	s := service.NewService(&service.Config{
		Filename: "/does/not/exist",
		Mode:     parser.Relaxed,
	})

	b := Build(s, "", "test")
	b.WithInterceptors(
		InterceptorUnavailable(s),
		RecoverFromPanic,
		PrettyErrorInterceptor,
	)

	api := apitest.NewWithHandler(b)

	resp := api.Request("GET", "/v1/games").Do()

	biff.AssertEqual(resp.StatusCode, http.StatusServiceUnavailable)
	errBody := resp.BodyJsonMap()["error"].(map[string]interface{})
	biff.AssertEqual(errBody["message"], "temporary unavailable: opening")
}

const sampleData = "Game\tAeternum\n" +
	"Cover\n" +
	"Engine\tGodot\n" +
	"Setup\n" +
	"Runtime\n" +
	"Store\thttps://store.steampowered.com/app/1869200/Aeternum/\n" +
	"Hints\n" +
	"Genre\tShmup\n" +
	"Tags\tindie, manga\n" +
	"Year\t2022\n" +
	"Dev\tAeternum Game Studios\n" +
	"Pub\n" +
	"Version\n" +
	"Status\t6\n" +
	"Added\t2022-05-01\n" +
	"Updated\t2022-05-01\n" +
	"IgdbId\t153492\n" +
	"Game\tThe Adventures of Mr. Hat\n" +
	"Cover\n" +
	"Engine\tgodot\n" +
	"Setup\n" +
	"Runtime\n" +
	"Store\thttps://www.gog.com/game/mr_hat\n" +
	"Hints\n" +
	"Genre\tPlatformer\n" +
	"Tags\tindie\n" +
	"Year\tearly access\n" +
	"Dev\tAX-GAME\n" +
	"Pub\tFun Quarter\n" +
	"Version\tEarly Access\n" +
	"Status\t5 works\n" +
	"Added\t2022-05-01\n" +
	"Updated\t2022-05-12\n" +
	"IgdbId\n"

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		filename := path.Join(t.TempDir(), "games.db")
		biff.AssertNil(os.WriteFile(filename, []byte(sampleData), 0666))

		s := service.NewService(&service.Config{
			Filename: filename,
			Mode:     parser.Relaxed,
		})

		biff.AssertNil(s.Load())
		biff.AssertEqual(s.GetStatus(), service.StatusOperating)
		biff.AssertEqual(s.CountGames(), 2)

		b := Build(s, "", "test")
		b.WithInterceptors(
			InterceptorUnavailable(s),
			RecoverFromPanic,
			PrettyErrorInterceptor,
		)

		api := apitest.NewWithHandler(b)

		aeternum, err := s.GetGameBySteamID(1869200)
		biff.AssertNil(err)

		a.Alternative("List games", func(a *biff.A) {
			resp := api.Request("GET", "/v1/games").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			body := resp.BodyJsonMap()
			biff.AssertEqualJson(body["count"], 2)

			// Sorted by ordering key
			items := body["items"].([]interface{})
			first := items[0].(map[string]interface{})
			biff.AssertEqual(first["name"], "The Adventures of Mr. Hat")
		})

		a.Alternative("List games filtered", func(a *biff.A) {
			resp := api.Request("GET", "/v1/games").
				WithQuery("tag", "manga").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJsonMap()["count"], 1)
		})

		a.Alternative("List games filtered is an OR", func(a *biff.A) {
			resp := api.Request("GET", "/v1/games").
				WithQuery("tag", "manga").
				WithQuery("name", "hat").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJsonMap()["count"], 2)
		})

		a.Alternative("List games by ids", func(a *biff.A) {
			resp := api.Request("GET", "/v1/games").
				WithQuery("ids", fmt.Sprintf("%d,999", aeternum.UID)).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJsonMap()["count"], 1)
		})

		a.Alternative("Get game", func(a *biff.A) {
			resp := api.Request("GET", fmt.Sprintf("/v1/games/%d", aeternum.UID)).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			body := resp.BodyJsonMap()
			biff.AssertEqual(body["name"], "Aeternum")
			biff.AssertEqualJson(body["igdb_id"], 153492)
		})

		a.Alternative("Get game, bad id", func(a *biff.A) {
			resp := api.Request("GET", "/v1/games/banana").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Get game, not found", func(a *biff.A) {
			resp := api.Request("GET", "/v1/games/999").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Find games", func(a *biff.A) {
			resp := api.Request("POST", "/v1/games:find").
				WithBodyJson(JSON{
					"filter": JSON{"engine": "godot"},
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			lines := strings.Split(strings.TrimSpace(resp.BodyString()), "\n")
			biff.AssertEqual(len(lines), 1)
			biff.AssertEqual(strings.Contains(lines[0], "Mr. Hat"), true)
		})

		a.Alternative("Find games, skip and limit", func(a *biff.A) {
			resp := api.Request("POST", "/v1/games:find").
				WithBodyJson(JSON{"skip": 1}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			lines := strings.Split(strings.TrimSpace(resp.BodyString()), "\n")
			biff.AssertEqual(len(lines), 1)
		})

		a.Alternative("Get game by steam id", func(a *biff.A) {
			resp := api.Request("GET", "/v1/steam/1869200").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyJsonMap()["name"], "Aeternum")
		})

		a.Alternative("List categories", func(a *biff.A) {
			resp := api.Request("GET", "/v1/categories").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []interface{}{
				"engines", "runtimes", "genres", "tags", "years", "devs", "pubs",
			})
		})

		a.Alternative("Get category", func(a *biff.A) {
			resp := api.Request("GET", "/v1/categories/tags").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"count": 2,
				"items": []string{"indie", "manga"},
			})
		})

		a.Alternative("Get category with ids", func(a *biff.A) {
			resp := api.Request("GET", "/v1/categories/tags").
				WithQuery("with_ids", "true").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			entries := resp.BodyJson().([]interface{})
			biff.AssertEqual(len(entries), 2)
		})

		a.Alternative("Get category, not found", func(a *biff.A) {
			resp := api.Request("GET", "/v1/categories/banana").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("List category games", func(a *biff.A) {
			resp := api.Request("GET", "/v1/categories/tags/games").
				WithQuery("value", "manga").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJsonMap()["count"], 1)
		})

		a.Alternative("List category games, substring search", func(a *biff.A) {
			resp := api.Request("GET", "/v1/categories/engines/games").
				WithQuery("value", "GODOT").
				WithQuery("search", "true").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJsonMap()["count"], 2)
		})

		a.Alternative("List category games, missing value", func(a *biff.A) {
			resp := api.Request("GET", "/v1/categories/tags/games").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Status", func(a *biff.A) {
			resp := api.Request("GET", "/v1/status").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"status": "operating",
				"games":  2,
			})
		})

		a.Alternative("Reload", func(a *biff.A) {
			resp := api.Request("POST", "/v1/status:reload").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJsonMap()["games"], 2)
		})

		a.Alternative("Release", func(a *biff.A) {
			resp := api.Request("GET", "/release").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(strings.Contains(resp.BodyString(), "test"), true)
		})

	})
}
