// Package scraper fetches per-hero strategy documents from the tips site
// that the knowledge base is built from.
package scraper

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/draftbot/internal/data"
	"github.com/draftbot/internal/storage"
)

// Client is the scraper client.
type Client struct {
	httpClient *http.Client
	redis      *storage.RedisClient
	baseURL    string
}

// NewClient creates a new scraper client.
func NewClient(baseURL string, redis *storage.RedisClient) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		redis:      redis,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchStrategy returns the strategy document for one hero, from the Redis
// cache when possible, otherwise scraped from the site.
func (c *Client) FetchStrategy(heroName string) (*data.Strategy, error) {
	safeName := data.SafeName(heroName)

	// Redis key: strategy:v1:{safe_name}
	cacheKey := fmt.Sprintf("strategy:v1:%s", safeName)

	// 1. Check cache
	if c.redis != nil {
		if val, err := c.redis.Get(cacheKey); err == nil && val != "" {
			var st data.Strategy
			if err := json.Unmarshal([]byte(val), &st); err == nil {
				log.Printf("Strategy cache hit for %s", heroName)
				return &st, nil
			}
		}
	}

	// 2. Scrape the hero page
	pageURL := fmt.Sprintf("%s/?%s", c.baseURL, url.QueryEscape(heroName))
	log.Printf("Scraping strategy from %s", pageURL)

	st, err := c.scrapeStrategy(pageURL, heroName)
	if err != nil {
		return nil, err
	}

	// 3. Save to cache
	if c.redis != nil {
		if raw, err := json.Marshal(st); err == nil {
			c.redis.SetTTL(cacheKey, string(raw), 24*time.Hour)
		}
	}

	return st, nil
}

// scrapeStrategy downloads and parses one hero page.
func (c *Client) scrapeStrategy(pageURL, heroName string) (*data.Strategy, error) {
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	return parseStrategyDoc(doc, heroName)
}

// parseStrategyDoc extracts the tip lists from a hero page. The page groups
// tips into boxes headed "Playing as ..." and "Playing against ..."; the
// latter become counter tips, everything else is general.
func parseStrategyDoc(doc *goquery.Document, heroName string) (*data.Strategy, error) {
	var general, counter []string

	doc.Find("div.tips-box").Each(func(i int, box *goquery.Selection) {
		header := strings.ToLower(box.Find("h3").First().Text())

		box.Find("li").Each(func(j int, li *goquery.Selection) {
			tip := strings.TrimSpace(li.Text())
			if tip == "" {
				return
			}
			if strings.Contains(header, "against") {
				counter = append(counter, tip)
			} else {
				general = append(general, tip)
			}
		})
	})

	if len(general) == 0 && len(counter) == 0 {
		return nil, fmt.Errorf("no tips found for %s", heroName)
	}

	return &data.Strategy{
		Hero: heroName,
		Strategies: data.StrategySections{
			GeneralTips: general,
			CounterTips: counter,
		},
	}, nil
}
