package internal

import "github.com/veandco/go-sdl2/sdl"

// TextureCache is a small LRU of textures. Evicted textures are destroyed,
// so callers must not hold on to a texture across frames.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return texture
	}
	return nil
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	// If key already exists, just update and move to end
	if _, exists := c.textures[key]; exists {
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	// Evict oldest if at capacity
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Delete destroys and forgets the texture stored under key, if any.
func (c *TextureCache) Delete(key string) {
	texture, exists := c.textures[key]
	if !exists {
		return
	}
	destroyTexture(texture)
	delete(c.textures, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Resize changes the capacity, evicting the oldest textures if needed.
func (c *TextureCache) Resize(maxSize int) {
	if maxSize < 1 {
		maxSize = 1
	}
	c.maxSize = maxSize
	for len(c.order) > c.maxSize {
		c.evictOldest()
	}
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		destroyTexture(texture)
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		destroyTexture(texture)
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}

func destroyTexture(texture *sdl.Texture) {
	if texture != nil {
		texture.Destroy()
	}
}
