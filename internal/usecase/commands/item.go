package commands

import (
	"context"

	"lendhub/internal/domain/item"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/queries"
	"lendhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotItemOwner = errs.New("only the item owner may do this")

type CreateItemParams struct {
	Title       string
	Description string
	Category    string
	Price       float64
	PriceUnit   string
	Longitude   float64
	Latitude    float64
	OwnerEmail  string
}

type ItemCommands interface {
	Create(ctx context.Context, p CreateItemParams) (*queries.ItemView, error)
	// Delete removes the item and cascade-deletes its pending and
	// approved requests. Completed and rejected requests keep their
	// reference; the dangling item id is a documented trade-off of
	// preserving transaction history.
	Delete(ctx context.Context, id uuid.UUID, actorEmail string) error
}

type itemCommandsImpl struct {
	itemRepo    shared.ItemRepository
	requestRepo shared.RequestRepository
	reads       shared.CommandReads
	itemQueries queries.ItemQueries
	uow         shared.UnitOfWork
	clock       clock.Clock
}

func NewItemCommands(
	itemRepo shared.ItemRepository,
	requestRepo shared.RequestRepository,
	reads shared.CommandReads,
	itemQueries queries.ItemQueries,
	uow shared.UnitOfWork,
	clock clock.Clock,
) ItemCommands {
	return &itemCommandsImpl{
		itemRepo:    itemRepo,
		requestRepo: requestRepo,
		reads:       reads,
		itemQueries: itemQueries,
		uow:         uow,
		clock:       clock,
	}
}

func (c *itemCommandsImpl) Create(ctx context.Context, p CreateItemParams) (*queries.ItemView, error) {
	priceUnit, err := item.NewPriceUnit(p.PriceUnit)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := item.NewItem(
		p.Title,
		p.Description,
		p.Category,
		p.Price,
		priceUnit,
		item.Location{Longitude: p.Longitude, Latitude: p.Latitude},
		p.OwnerEmail,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, db infra.DBTX) error {
		return c.itemRepo.Create(ctx, db, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.itemQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *itemCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actorEmail string) error {
	snap, err := c.reads.ItemByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrItemNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.OwnerEmail != actorEmail {
		return ErrNotItemOwner
	}

	return c.uow.Within(ctx, func(ctx context.Context, db infra.DBTX) error {
		if _, err := c.requestRepo.DeleteOpenByItem(ctx, db, id); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if _, err := c.itemRepo.Delete(ctx, db, id); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
