package wire

import (
	"Curatia/internal/api"
	"Curatia/internal/api/config"
	"Curatia/internal/api/handler"
	"Curatia/internal/job"
	"Curatia/internal/pkg/cron"
	"Curatia/internal/pkg/kafka"
	"Curatia/internal/repository"
	"Curatia/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	listRepo := repository.NewListRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)
	itemRepo := repository.NewItemRepository(db)
	reportRepo := repository.NewReportRepository(db)
	moderationRepo := repository.NewModerationRepository(db)
	featuredSlotRepo := repository.NewFeaturedSlotRepository(db)
	curatorRepo := repository.NewCuratorRepository(db)

	notifier := service.NewLogNotifier()

	trendingService := service.NewTrendingService(listRepo, categoryRepo, engagementRepo, notifier)
	moderationService := service.NewModerationService(itemRepo, reportRepo, moderationRepo, curatorRepo, notifier)
	rotationService := service.NewRotationService(featuredSlotRepo, categoryRepo)
	curatorService := service.NewCuratorService(curatorRepo, notifier)

	handlers := &api.HandlersGroup{
		TrendingHandler:   handler.NewTrendingHandler(trendingService),
		ModerationHandler: handler.NewModerationHandler(moderationService),
		RotationHandler:   handler.NewRotationHandler(rotationService),
		CuratorHandler:    handler.NewCuratorHandler(curatorService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, listRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewTrendingRefreshJob(trendingService),
		job.NewCuratorMetricsJob(curatorService),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
