package handler

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// maxListIndex is the highest "key[N]" index still read as a list position;
// larger indexes turn the key into an object, as qs does.
const maxListIndex = 20

// queryParams groups the raw query string by key. A key is a list when it repeats,
// is written with a trailing "[]" (numbers[]=1) or with small indexes (numbers[0]=1).
// Other bracketed keys (user[name]=x) form objects and carry no scalar value.
type queryParams struct {
	values  map[string][]string
	lists   map[string]bool
	objects map[string]map[string]string
}

type indexedValue struct {
	index int
	value string
}

func parseQuery(c *fiber.Ctx) queryParams {
	q := queryParams{
		values:  make(map[string][]string),
		lists:   make(map[string]bool),
		objects: make(map[string]map[string]string),
	}
	indexed := make(map[string][]indexedValue)

	c.Context().QueryArgs().VisitAll(func(k, v []byte) {
		key, val := string(k), string(v)

		base, sub, ok := splitBracket(key)
		if !ok {
			q.values[key] = append(q.values[key], val)
			return
		}
		if sub == "" {
			q.values[base] = append(q.values[base], val)
			q.lists[base] = true
			return
		}
		if n, err := strconv.Atoi(sub); err == nil && n >= 0 && n <= maxListIndex {
			indexed[base] = append(indexed[base], indexedValue{index: n, value: val})
			return
		}
		if q.objects[base] == nil {
			q.objects[base] = make(map[string]string)
		}
		q.objects[base][sub] = val
	})

	for base, items := range indexed {
		sort.SliceStable(items, func(i, j int) bool { return items[i].index < items[j].index })
		for _, it := range items {
			q.values[base] = append(q.values[base], it.value)
		}
		q.lists[base] = true
	}
	for k, vs := range q.values {
		if len(vs) > 1 {
			q.lists[k] = true
		}
	}
	return q
}

// splitBracket splits "base[sub]" into its parts. Keys without a well formed
// trailing bracket pair (including "x[") are not split.
func splitBracket(key string) (base, sub string, ok bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return "", "", false
	}
	sub = key[open+1 : len(key)-1]
	if strings.ContainsAny(sub, "[]") {
		return "", "", false
	}
	return key[:open], sub, true
}

// Get returns the value for key; repeated values are joined with ",".
// Object-form keys and absent keys yield "".
func (q queryParams) Get(key string) string {
	if _, isObject := q.objects[key]; isObject {
		return ""
	}
	return strings.Join(q.values[key], ",")
}

// List returns the values for key and whether the caller sent them as a list.
func (q queryParams) List(key string) ([]string, bool) {
	if _, isObject := q.objects[key]; isObject {
		return nil, false
	}
	return q.values[key], q.lists[key]
}

// Map returns the parameters as logged by the query viewer: single values as strings,
// lists as []string and objects as map[string]string.
func (q queryParams) Map() map[string]any {
	out := make(map[string]any, len(q.values)+len(q.objects))
	for k, vs := range q.values {
		if q.lists[k] {
			out[k] = vs
			continue
		}
		out[k] = vs[0]
	}
	for k, obj := range q.objects {
		out[k] = obj
	}
	return out
}
