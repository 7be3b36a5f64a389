package games

import (
	"regexp"
	"strconv"
	"strings"
)

// Store identifies the storefront a link points to.
type Store string

const (
	StoreSteam        Store = "steam"
	StoreGog          Store = "gog"
	StoreHumbleBundle Store = "humblebundle"
	StoreItchIo       Store = "itchio"
	StoreEpic         Store = "epic"
	StoreUnknown      Store = "unknown"
)

// StoreLink is one store url of a game, classified by storefront. Steam
// links also carry the numeric app id extracted from the url.
type StoreLink struct {
	Store Store  `json:"store"`
	URL   string `json:"url"`
	ID    *int   `json:"id,omitempty"`
}

var steamAppRe = regexp.MustCompile(`/app/(\d+)(/.*)?$`)

// NewStoreLink classifies an url by matching known storefront domain
// fragments.
func NewStoreLink(url string) StoreLink {
	switch {
	case strings.Contains(url, "steampowered"):
		return StoreLink{Store: StoreSteam, URL: url, ID: steamID(url)}
	case strings.Contains(url, "gog.com"):
		return StoreLink{Store: StoreGog, URL: url}
	case strings.Contains(url, "humblebundle.com"):
		return StoreLink{Store: StoreHumbleBundle, URL: url}
	case strings.Contains(url, "itch.io"):
		return StoreLink{Store: StoreItchIo, URL: url}
	case strings.Contains(url, "epicgames.com"):
		return StoreLink{Store: StoreEpic, URL: url}
	}
	return StoreLink{Store: StoreUnknown, URL: url}
}

func steamID(url string) *int {
	m := steamAppRe.FindStringSubmatch(url)
	if m == nil {
		return nil
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &id
}

func (l StoreLink) String() string {
	return l.URL
}

// StoreLinks is the ordered list of store links of one game.
type StoreLinks []StoreLink

// ParseStoreLinks splits a Store line payload on single spaces and
// classifies each token.
func ParseStoreLinks(payload string) StoreLinks {
	links := StoreLinks{}
	for _, token := range strings.Split(payload, " ") {
		links = append(links, NewStoreLink(strings.TrimSpace(token)))
	}
	return links
}

func (l StoreLinks) String() string {
	urls := make([]string, len(l))
	for i, link := range l {
		urls[i] = link.URL
	}
	return strings.Join(urls, " ")
}

// HasSteam reports whether a Steam link is present.
func (l StoreLinks) HasSteam() bool {
	for _, link := range l {
		if link.Store == StoreSteam {
			return true
		}
	}
	return false
}

// HasGog reports whether a Gog link is present.
func (l StoreLinks) HasGog() bool {
	for _, link := range l {
		if link.Store == StoreGog {
			return true
		}
	}
	return false
}

// SteamID returns the app id of the first Steam link carrying one, or
// nil when there is none.
func (l StoreLinks) SteamID() *int {
	for _, link := range l {
		if link.Store == StoreSteam && link.ID != nil {
			return link.ID
		}
	}
	return nil
}
