package run

// resolveCache memoizes resolver outcomes for the lifetime of a run so
// repeated references never trigger duplicate API queries. Latest-mode
// results are keyed by action, migration results by action@tag, as two
// separate maps so the modes can't collide. Failures are cached too.
type resolveCache struct {
	latest map[string]*resolveResult
	tags   map[string]*resolveResult
}

type resolveResult struct {
	pin string
	err error
}

func newResolveCache() *resolveCache {
	return &resolveCache{
		latest: map[string]*resolveResult{},
		tags:   map[string]*resolveResult{},
	}
}

func (rc *resolveCache) Latest(action string) (*resolveResult, bool) {
	r, ok := rc.latest[action]
	return r, ok
}

func (rc *resolveCache) SetLatest(action, pin string, err error) {
	rc.latest[action] = &resolveResult{pin: pin, err: err}
}

func (rc *resolveCache) Tag(action, tag string) (*resolveResult, bool) {
	r, ok := rc.tags[action+"@"+tag]
	return r, ok
}

func (rc *resolveCache) SetTag(action, tag, pin string, err error) {
	rc.tags[action+"@"+tag] = &resolveResult{pin: pin, err: err}
}
