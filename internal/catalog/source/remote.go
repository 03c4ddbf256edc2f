package source

import (
	"context"
	"time"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"
	"github.com/talkbazaar/storefront/internal/domain"
)

// RemoteSource fetches the catalog from an upstream products API returning
// {"products": [...]} json.
type RemoteSource struct {
	url     string
	timeout time.Duration
}

func NewRemoteSource(url string) *RemoteSource {
	return &RemoteSource{url: url, timeout: 15 * time.Second}
}

func (s *RemoteSource) Fetch(ctx context.Context) ([]domain.Product, error) {
	var payload struct {
		Products []domain.Product `json:"products"`
	}
	var code int
	err := gout.GET(s.url).
		WithContext(ctx).
		SetTimeout(s.timeout).
		Code(&code).
		BindJSON(&payload).
		Do()
	if err != nil {
		return nil, errors.Wrapf(err, "fetch catalog from %s", s.url)
	}
	if code != 200 {
		return nil, errors.Errorf("fetch catalog from %s: status %d", s.url, code)
	}
	return payload.Products, nil
}
