package handlers

import (
	"strings"
	"sync"
	"time"

	"github.com/StounhandJ/shorts_resolver/internal/resolver"
	"github.com/google/uuid"
)

const (
	linkTTL       = time.Hour
	actionAudio   = "audio"
	callbackSplit = "|"
)

type pendingLink struct {
	url     string
	created time.Time
}

// pendingLinks хранит ссылки, для которых пользователь ещё выбирает качество.
// В callback data помещается только короткий ID, сама ссылка может не влезть в 64 байта.
type pendingLinks struct {
	mu    sync.Mutex
	links map[string]pendingLink
	ttl   time.Duration
	now   func() time.Time
}

func newPendingLinks(ttl time.Duration) *pendingLinks {
	return &pendingLinks{
		links: make(map[string]pendingLink),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (p *pendingLinks) Put(url string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()

	for id, link := range p.links {
		if now.Sub(link.created) > p.ttl {
			delete(p.links, id)
		}
	}

	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	p.links[id] = pendingLink{url: url, created: now}

	return id
}

func (p *pendingLinks) Get(id string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	link, ok := p.links[id]
	if !ok || p.now().Sub(link.created) > p.ttl {
		return "", false
	}

	return link.url, true
}

func (p *pendingLinks) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.links)
}

// choice - выбор пользователя, закодированный в кнопке: "<action>|<link id>"
type choice struct {
	linkID  string
	quality resolver.Quality
	audio   bool
}

func (c choice) encode() string {
	action := c.quality.String()
	if c.audio {
		action = actionAudio
	}

	return action + callbackSplit + c.linkID
}

func decodeChoice(data string) (choice, bool) {
	action, linkID, ok := strings.Cut(data, callbackSplit)
	if !ok || action == "" || linkID == "" {
		return choice{}, false
	}

	if action == actionAudio {
		return choice{linkID: linkID, audio: true}, true
	}

	quality, err := resolver.ParseQuality(action)
	if err != nil {
		return choice{}, false
	}

	return choice{linkID: linkID, quality: quality}, true
}
