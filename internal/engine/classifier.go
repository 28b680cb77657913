package engine

// Tier 阈值表中的一档：Min 为该档的最小分数（含），Key 为档位标识
type Tier struct {
	Min float64
	Key string
}

// Table 升序阈值表。第一档的 Min 必须为 0，作为兜底档
type Table []Tier

// 热度徽章阈值表
var TrendingBadges = Table{
	{Min: 0, Key: BadgeNone},
	{Min: 50, Key: BadgeHot},
	{Min: 200, Key: BadgeViral},
}

// 条目审核状态阈值表
var ModerationStatuses = Table{
	{Min: 0, Key: StatusNormal},
	{Min: 3, Key: StatusSoftFlag},
	{Min: 5, Key: StatusUnderReview},
	{Min: 8, Key: StatusHidden},
}

// 策展人等级阈值表（七档）
var CuratorLevels = Table{
	{Min: 0, Key: LevelNewcomer},
	{Min: 50, Key: LevelExplorer},
	{Min: 150, Key: LevelActiveCurator},
	{Min: 300, Key: LevelSkilledCurator},
	{Min: 500, Key: LevelTastemaker},
	{Min: 800, Key: LevelExpertCurator},
	{Min: 1200, Key: LevelEliteCurator},
}

// Classify 返回 Min 不超过 value 的最高档位；value 低于所有档位时返回最低档
func Classify(value float64, table Table) string {
	if len(table) == 0 {
		return ""
	}
	result := table[0].Key
	for _, t := range table {
		if value >= t.Min {
			result = t.Key
		}
	}
	return result
}

// NextTier 返回严格高于当前分值的最近一档；已是最高档时返回 nil
func NextTier(value float64, table Table) *Tier {
	for i := range table {
		if value < table[i].Min {
			return &table[i]
		}
	}
	return nil
}

// DistanceToNext 返回距离下一档还差多少分；已是最高档时返回 nil
func DistanceToNext(value float64, table Table) *float64 {
	next := NextTier(value, table)
	if next == nil {
		return nil
	}
	d := next.Min - value
	return &d
}
