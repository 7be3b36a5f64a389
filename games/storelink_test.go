package games

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestNewStoreLink(t *testing.T) {

	l := NewStoreLink("https://store.steampowered.com/app/1869200/Aeternum/")
	AssertEqual(l.Store, StoreSteam)
	AssertEqual(*l.ID, 1869200)

	l = NewStoreLink("https://www.gog.com/game/foo")
	AssertEqual(l.Store, StoreGog)
	AssertNil(l.ID)

	l = NewStoreLink("https://foo.itch.io/bar")
	AssertEqual(l.Store, StoreItchIo)

	l = NewStoreLink("https://www.humblebundle.com/store/foo")
	AssertEqual(l.Store, StoreHumbleBundle)

	l = NewStoreLink("https://store.epicgames.com/p/foo")
	AssertEqual(l.Store, StoreEpic)

	l = NewStoreLink("https://example.com/foo")
	AssertEqual(l.Store, StoreUnknown)
}

func TestSteamIDVariants(t *testing.T) {

	// No trailing slash
	l := NewStoreLink("https://store.steampowered.com/app/615610")
	AssertEqual(*l.ID, 615610)

	// Steam url without an app id carries none
	l = NewStoreLink("https://store.steampowered.com/")
	AssertEqual(l.Store, StoreSteam)
	AssertNil(l.ID)
}

func TestParseStoreLinks(t *testing.T) {

	links := ParseStoreLinks("https://store.steampowered.com/app/615610/Foo/ https://www.gog.com/game/foo")
	AssertEqual(len(links), 2)
	AssertEqual(links.HasSteam(), true)
	AssertEqual(links.HasGog(), true)
	AssertEqual(*links.SteamID(), 615610)

	AssertEqual(links.String(), "https://store.steampowered.com/app/615610/Foo/ https://www.gog.com/game/foo")
}
