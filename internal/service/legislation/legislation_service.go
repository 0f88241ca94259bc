package legislation

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain/dto"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/logger"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"
)

const publishedAtLayout = "02/01/2006"

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// SyncFromIndex scrapes the configured legislation index page, follows each
// act's detail page and upserts the result.
func (s *Service) SyncFromIndex(ctx context.Context, indexURL string) ([]*domain.Legislation, error) {
	resp, err := http.Get(indexURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get index page: %w", err)
	}
	defer func() {
		err = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	base, err := url.Parse(indexURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}

	synced := make([]*domain.Legislation, 0, 100)
	syncedMx := sync.Mutex{}
	eg, egCtx := errgroup.WithContext(ctx)
	doc.Find("table.legislacao tbody tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		number := strings.TrimSpace(tr.Find("th").Text())
		link := tr.Find("td a")
		title := strings.TrimSpace(link.Text())
		sphere := strings.TrimSpace(tr.Find("td.esfera").Text())

		href, ok := link.Attr("href")
		if !ok {
			err = fmt.Errorf("couldn't find href for act %s", number)
			return false
		}
		detailURL := base.ResolveReference(&url.URL{Path: href}).String()

		eg.Go(func() error {
			item, detailErr := s.fetchDetail(egCtx, detailURL)
			if detailErr != nil {
				return fmt.Errorf("fetchDetail, number-%s: %w", number, detailErr)
			}

			item.Number = number
			item.Title = title
			item.Sphere = sphere
			item.SourceURL = detailURL

			saved, upsertErr := s.store.UpsertLegislation(egCtx, item)
			if upsertErr != nil {
				logger.Errorf(egCtx, "store.UpsertLegislation: %s", upsertErr.Error())
				return fmt.Errorf("store.UpsertLegislation, number-%s: %w", number, upsertErr)
			}

			logger.Infof(egCtx, "synced legislation %s", number)

			syncedMx.Lock()
			defer syncedMx.Unlock()
			synced = append(synced, saved)
			return nil
		})

		return true
	})
	if err != nil {
		return nil, err
	}

	if err = eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	return synced, nil
}

func (s *Service) fetchDetail(ctx context.Context, detailURL string) (item *dto.LegislationDto, err error) {
	var resp *http.Response
	err = backoff.Retry(
		func() error {
			var httpErr error

			resp, httpErr = http.Get(detailURL)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(10*time.Millisecond), 10),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			err = fmt.Errorf("failed to close reader: %w", closeErr)
		}
	}()

	doc, parseErr := goquery.NewDocumentFromReader(resp.Body)
	if parseErr != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", parseErr)
	}

	return parseDetailPage(doc), nil
}

func parseDetailPage(doc *goquery.Document) *dto.LegislationDto {
	item := new(dto.LegislationDto)

	item.Status = strings.TrimSpace(doc.Find("span.status").First().Text())
	if item.Status == "" {
		item.Status = "vigente"
	}

	dateStr := strings.TrimSpace(doc.Find("span.data-publicacao").First().Text())
	if publishedAt, parseErr := time.Parse(publishedAtLayout, dateStr); parseErr == nil {
		item.PublishedAt = &publishedAt
	}

	doc.Find("table.requisitos tbody tr").Each(func(_ int, tr *goquery.Selection) {
		name := strings.TrimSpace(tr.Find("th").Text())
		text := strings.TrimSpace(tr.Find("td").Text())
		if name == "" {
			return
		}
		item.PutRequirement(name, text)
	})

	return item
}

func (s *Service) List(ctx context.Context, opts store.ListLegislationsOpts) ([]*domain.Legislation, error) {
	items, err := s.store.ListLegislations(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store.ListLegislations: %w", err)
	}

	return items, nil
}
