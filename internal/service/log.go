package service

import (
	"sort"
	"strings"
	"sync"

	"Muploader/internal/types"

	"github.com/samber/lo"
)

const defaultLogLimit = 500

// LogService keeps the most recent log entries in memory so a run can be
// reported on after it finished
type LogService struct {
	logs  []types.SimpleLog
	mutex sync.RWMutex
	limit int
}

func NewLogService(limit int) *LogService {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	return &LogService{
		logs:  make([]types.SimpleLog, 0, limit),
		limit: limit,
	}
}

// Add appends an entry, dropping the oldest beyond the limit
func (s *LogService) Add(log types.SimpleLog) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.logs = append(s.logs, log)
	if len(s.logs) > s.limit {
		s.logs = s.logs[len(s.logs)-s.limit:]
	}
}

// Query returns matching entries, newest first
func (s *LogService) Query(query types.LogQuery) []types.SimpleLog {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	limit := query.Limit
	if limit <= 0 {
		limit = 100
	}

	result := make([]types.SimpleLog, 0, limit)
	for i := len(s.logs) - 1; i >= 0 && len(result) < limit; i-- {
		log := s.logs[i]
		if query.Keyword != "" && !strings.Contains(log.Message, query.Keyword) {
			continue
		}
		if query.Platform != "" && log.Platform != query.Platform {
			continue
		}
		if query.Level != "" && log.Level != query.Level {
			continue
		}
		result = append(result, log)
	}
	return result
}

func (s *LogService) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.logs = make([]types.SimpleLog, 0, s.limit)
}

func (s *LogService) Count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.logs)
}

// GetPlatforms lists the platforms that logged something, sorted
func (s *LogService) GetPlatforms() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	platforms := lo.Uniq(lo.FilterMap(s.logs, func(log types.SimpleLog, _ int) (string, bool) {
		return log.Platform, log.Platform != ""
	}))
	sort.Strings(platforms)
	return platforms
}
