package cmd

import (
	"log/slog"

	"orderboard/internal/adapters/out/postgres/orderrepo"
	"orderboard/internal/adapters/out/redisfeed"
	"orderboard/internal/core/application/board"
	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, boards and use-case handlers. One board
// runs per served category; all of them share the same repository and the
// same Redis subscription.
type CompositionRoot struct {
	gormDB      *gorm.DB
	redisClient *redis.Client
	repository  *orderrepo.GormOrderRepository
	boards      map[order.Category]*board.Board
	logger      *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	repository := orderrepo.NewGormOrderRepository(gormDB)

	boards := make(map[order.Category]*board.Board)
	for _, category := range []order.Category{order.DineIn, order.Delivery} {
		b, err := board.NewBoard(category, repository, repository, logger)
		if err != nil {
			return nil, err
		}
		boards[category] = b
	}

	return &CompositionRoot{
		gormDB:      gormDB,
		redisClient: redisClient,
		repository:  repository,
		boards:      boards,
		logger:      logger,
	}, nil
}

// BoardFor resolves the board serving the given category. Implements the
// BoardProvider interface consumed by command and query handlers.
func (c *CompositionRoot) BoardFor(category order.Category) (*board.Board, error) {
	b, ok := c.boards[category]
	if !ok {
		return nil, errs.NewValueIsInvalidError("category")
	}
	return b, nil
}

// Boards returns every wired board.
func (c *CompositionRoot) Boards() []*board.Board {
	all := make([]*board.Board, 0, len(c.boards))
	for _, b := range c.boards {
		all = append(all, b)
	}
	return all
}

// CreateReconciliationFeeds builds one reconciliation feed per board, all
// fed from the same Redis subscription channel.
func (c *CompositionRoot) CreateReconciliationFeeds(channel string) ([]*board.ReconciliationFeed, error) {
	feeds := make([]*board.ReconciliationFeed, 0, len(c.boards))
	for _, b := range c.boards {
		pushFeed, err := redisfeed.NewRedisPushFeed(c.redisClient, channel, c.logger)
		if err != nil {
			return nil, err
		}

		feed, err := board.NewReconciliationFeed(b, pushFeed, c.logger)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}
	return feeds, nil
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c)
}

func (c *CompositionRoot) CreateRetreatOrderCommandHandler() commands.RetreatOrderCommandHandler {
	return commands.NewRetreatOrderCommandHandler(c)
}

func (c *CompositionRoot) CreateMoveOrderCommandHandler() commands.MoveOrderCommandHandler {
	return commands.NewMoveOrderCommandHandler(c)
}

func (c *CompositionRoot) CreateGetBoardQueryHandler() queries.GetBoardQueryHandler {
	return queries.NewGetBoardQueryHandler(c)
}

func (c *CompositionRoot) CreateGetPipelineQueryHandler() queries.GetPipelineQueryHandler {
	return queries.NewGetPipelineQueryHandler()
}
