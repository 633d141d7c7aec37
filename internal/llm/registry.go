package llm

import "fmt"

// ProviderFactory creates a new provider instance.
type ProviderFactory func() (Provider, error)

var providers = make(map[string]ProviderFactory)

// RegisterProvider registers a provider factory with the given name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewProvider creates a new provider instance based on the given name.
func NewProvider(name string) (Provider, error) {
	factory, exists := providers[name]
	if !exists {
		return nil, fmt.Errorf("unsupported provider: %s", name)
	}
	return factory()
}
