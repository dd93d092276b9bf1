package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/interfaces"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
)

// Registry хранит отображения строковых ключей на объекты оборудования,
// сгруппированные по доменам. Строится один раз при старте, после чего
// только читается; ссылки на объекты принадлежат аппаратному слою.
type Registry struct {
	mu      sync.RWMutex
	domains map[models.Domain]map[string]any
}

var _ interfaces.ObjectRegistry = (*Registry)(nil)

// identityProbe - одна попытка извлечь ключ элемента. Порядок проб
// фиксирован: Name, DeviceAlias, Port, Hostname.
type identityProbe struct {
	attr string
	get  func(elem any) (string, bool)
}

var probes = []identityProbe{
	{"Name", func(elem any) (string, bool) {
		if n, ok := elem.(interfaces.Named); ok {
			return n.Name(), true
		}
		return "", false
	}},
	{"DeviceAlias", func(elem any) (string, bool) {
		if a, ok := elem.(interfaces.Aliased); ok {
			return a.DeviceAlias(), true
		}
		return "", false
	}},
	{"Port", func(elem any) (string, bool) {
		if p, ok := elem.(interfaces.Ported); ok {
			return p.PortID(), true
		}
		return "", false
	}},
	{"Hostname", func(elem any) (string, bool) {
		if h, ok := elem.(interfaces.Hosted); ok {
			return h.Hostname(), true
		}
		return "", false
	}},
}

func New() *Registry {
	return &Registry{domains: map[models.Domain]map[string]any{}}
}

// Register строит отображение домена из коллекции элементов. Атрибут
// идентификации должен разрешаться для всех элементов коллекции; иначе
// пробуется следующий. Если ни один атрибут не подошел, домен регистрируется
// пустым и это фиксируется в логе.
func (r *Registry) Register(domain models.Domain, elements []any, logger *logging.Logger) {
	mapping := buildMap(elements)
	if mapping == nil {
		logger.Error("None of the identity attributes found in elements",
			"domain", string(domain), "attributes", probeNames())
		mapping = map[string]any{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.domains[domain] = mapping
}

func buildMap(elements []any) map[string]any {
	if len(elements) == 0 {
		return map[string]any{}
	}
	for _, probe := range probes {
		mapping := map[string]any{}
		resolved := true
		for _, elem := range elements {
			key, ok := probe.get(elem)
			if !ok {
				resolved = false
				break
			}
			mapping[key] = elem
		}
		if resolved {
			return mapping
		}
	}
	return nil
}

func probeNames() string {
	names := make([]string, len(probes))
	for i, p := range probes {
		names[i] = p.attr
	}
	return strings.Join(names, ", ")
}

// Lookup возвращает объект по ключу. Ошибка перечисляет допустимые ключи
// домена, чтобы backend мог диагностировать опечатку.
func (r *Registry) Lookup(domain models.Domain, key string) (any, error) {
	r.mu.RLock()
	mapping, ok := r.domains[domain]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown domain: %s", domain)
	}
	obj, ok := mapping[key]
	if !ok {
		return nil, fmt.Errorf("%s not in %s map, valid options are: [%s]",
			key, domain, strings.Join(sortedKeys(mapping), ", "))
	}
	return obj, nil
}

// HasDomain сообщает, зарегистрирован ли домен.
func (r *Registry) HasDomain(domain models.Domain) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.domains[domain]
	return ok
}

// Keys возвращает отсортированный список ключей домена.
func (r *Registry) Keys(domain models.Domain) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	mapping, ok := r.domains[domain]
	if !ok {
		return nil
	}
	return sortedKeys(mapping)
}

// Handles возвращает все объекты домена в порядке отсортированных ключей.
func (r *Registry) Handles(domain models.Domain) []any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	mapping, ok := r.domains[domain]
	if !ok {
		return nil
	}
	handles := make([]any, 0, len(mapping))
	for _, key := range sortedKeys(mapping) {
		handles = append(handles, mapping[key])
	}
	return handles
}

func sortedKeys(mapping map[string]any) []string {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
