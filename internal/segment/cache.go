package segment

import (
	"sync"
	"time"

	gc "github.com/patrickmn/go-cache"
)

// Cache keeps loaded predictors so each model file is read at most once.
type Cache struct {
	mu     sync.Mutex
	data   *gc.Cache
	source *Source
	load   func(m Model, fileName string) (Predictor, error)
}

// NewCache returns a predictor cache backed by the given model source.
func NewCache(source *Source) *Cache {
	c := &Cache{
		data:   gc.New(gc.NoExpiration, 10*time.Minute),
		source: source,
		load:   NewPredictor,
	}

	c.data.OnEvicted(func(name string, value interface{}) {
		if p, ok := value.(Predictor); ok {
			p.Close()
		}
	})

	return c
}

// Predictor returns a shared predictor for the named model, downloading and
// loading the model file on first use.
func (c *Cache) Predictor(name string) (Predictor, error) {
	m, err := ModelByName(name)

	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.data.Get(m.Name); ok {
		return cached.(Predictor), nil
	}

	fileName, err := c.source.ModelPath(m)

	if err != nil {
		return nil, err
	}

	p, err := c.load(m, fileName)

	if err != nil {
		return nil, err
	}

	c.data.SetDefault(m.Name, p)

	return p, nil
}

// Close releases all cached predictors.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for name := range c.data.Items() {
		c.data.Delete(name)
	}
}
