package consts

const (
	RoleAdmin = "ADMIN"
	RoleAudit = "AUDIT"
)

const (
	ItemStatusPending  int8 = 0
	ItemStatusApproved int8 = 1
	ItemStatusRejected int8 = 2
)

const (
	// 参与热度排名的候选清单上限
	TrendingCandidateLimit = 200
	// 热度榜单页大小
	TrendingPageSize = 20
	// 策展人排行榜长度
	LeaderboardSize = 50
)

const (
	// 热度榜缓存时长（秒），与刷新任务周期一致
	TrendingCacheSeconds = 1200
)
