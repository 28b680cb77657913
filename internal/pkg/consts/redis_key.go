package consts

const (
	TrendingRankKey       = "list:trending:rank:"
	ListTrendScoreKey     = "list:trend:score:"
	ListSaveCountKey      = "list:save:count:"
	ListLikeCountKey      = "list:like:count:"
	ListCommentCountKey   = "list:comment:count:"
	ListViewCountKey      = "list:view:count:"
	ListDirtyKey          = "list:dirty"
	CuratorDirtyKey       = "curator:dirty"
	CuratorProgressKey    = "curator:progress:"
	CuratorLeaderboardKey = "curator:leaderboard"
	RotationSuggestKey    = "featured:rotation:suggest"
)

const (
	ReportSubmitLock = "report:submit:lock:"
)
