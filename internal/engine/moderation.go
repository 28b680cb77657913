package engine

import "math"

// 审核状态，按分数区间有序排列
const (
	StatusNormal      = "NORMAL"
	StatusSoftFlag    = "SOFT_FLAG"
	StatusUnderReview = "UNDER_REVIEW"
	StatusHidden      = "HIDDEN"
)

// 举报理由（固定闭集）
const (
	ReasonSpam          = "spam"
	ReasonIncorrectInfo = "incorrect_info"
	ReasonCopyright     = "copyright"
	ReasonOffensive     = "offensive"
	ReasonHarmful       = "harmful"
)

// 各理由的基础权重
var reasonWeights = map[string]float64{
	ReasonSpam:          1.0,
	ReasonIncorrectInfo: 1.0,
	ReasonCopyright:     2.0,
	ReasonOffensive:     2.0,
	ReasonHarmful:       3.0,
}

// ValidReason 判断理由是否在固定闭集内
func ValidReason(reason string) bool {
	_, ok := reasonWeights[reason]
	return ok
}

// TrustWeight 举报人信任权重，由其策展人等级分档：新手贡献低，防止刷举报
func TrustWeight(curatorLevel string) float64 {
	switch curatorLevel {
	case LevelNewcomer, LevelExplorer:
		return 0.7
	case LevelActiveCurator, LevelSkilledCurator:
		return 1.0
	case LevelTastemaker, LevelExpertCurator:
		return 1.5
	case LevelEliteCurator:
		return 2.0
	default:
		return 0.7
	}
}

// ReportWeight 单次举报的权重 = 理由权重 × 信任权重，保留两位小数。
// 该值在举报创建时冻结为快照，后续信任变化不回溯
func ReportWeight(reason string, trustWeight float64) float64 {
	w, ok := reasonWeights[reason]
	if !ok {
		w = 1.0
	}
	if trustWeight < 0 {
		trustWeight = 0
	}
	return math.Round(w*trustWeight*100) / 100
}

// StatusForScore 由累计举报分推导审核状态。状态永远由分数派生，不允许独立写入
func StatusForScore(flagScore float64) string {
	if flagScore < 0 {
		flagScore = 0
	}
	return Classify(flagScore, ModerationStatuses)
}

// CanView HIDDEN 条目仅管理员与所属清单的作者可见，其余视角等同不存在。
// 纯谓词，无副作用
func CanView(status string, viewerID, ownerID uint64, viewerRoles []string) bool {
	if status != StatusHidden {
		return true
	}
	if viewerID != 0 && viewerID == ownerID {
		return true
	}
	for _, r := range viewerRoles {
		if r == "ADMIN" {
			return true
		}
	}
	return false
}
