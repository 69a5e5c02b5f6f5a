package cartControllers

import (
	"encoding/json"
	"errors"

	"github.com/arjune867/kriukesnack/cart"
	"github.com/arjune867/kriukesnack/models"
	"gorm.io/gorm"
)

// GORM-backed implementations of the cart package's collaborators.

type gormCatalog struct {
	db *gorm.DB
}

func (g *gormCatalog) ProductByID(id uint) (*models.Product, bool) {
	var product models.Product
	if err := g.db.Preload("Variants").First(&product, id).Error; err != nil {
		return nil, false
	}
	return &product, true
}

type gormDiscounts struct {
	db *gorm.DB
}

func (g *gormDiscounts) ValidateCode(code string) (*models.DiscountCode, bool) {
	var d models.DiscountCode
	if err := g.db.Where("code = ?", cart.NormalizeCode(code)).First(&d).Error; err != nil {
		return nil, false
	}
	return &d, true
}

func (g *gormDiscounts) ResolveByID(id uint) (*models.DiscountCode, bool) {
	var d models.DiscountCode
	if err := g.db.First(&d, id).Error; err != nil {
		return nil, false
	}
	return &d, true
}

// gormSnapshotStore keeps one CartSnapshot row per session, items and the
// applied discount serialized as JSON.
type gormSnapshotStore struct {
	db *gorm.DB
}

func (g *gormSnapshotStore) Load(sessionID string) (*cart.Snapshot, error) {
	var row models.CartSnapshot
	if err := g.db.Where("session_id = ?", sessionID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no cart yet
		}
		return nil, err
	}

	snap := &cart.Snapshot{}
	if row.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(row.ItemsJSON), &snap.Entries); err != nil {
			// Corrupt payload degrades to an empty cart rather than failing the load.
			snap.Entries = nil
		}
	}
	if row.DiscountJSON != "" {
		var d models.DiscountCode
		if err := json.Unmarshal([]byte(row.DiscountJSON), &d); err == nil {
			snap.Discount = &d
		}
	}
	return snap, nil
}

func (g *gormSnapshotStore) Save(sessionID string, snap *cart.Snapshot) error {
	items, err := json.Marshal(snap.Entries)
	if err != nil {
		return err
	}
	discount := ""
	if snap.Discount != nil {
		raw, err := json.Marshal(snap.Discount)
		if err != nil {
			return err
		}
		discount = string(raw)
	}

	var row models.CartSnapshot
	err = g.db.Where("session_id = ?", sessionID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.CartSnapshot{SessionID: sessionID, ItemsJSON: string(items), DiscountJSON: discount}
		return g.db.Create(&row).Error
	}
	if err != nil {
		return err
	}
	row.ItemsJSON = string(items)
	row.DiscountJSON = discount
	return g.db.Save(&row).Error
}

// openSessionCart loads and hydrates the session's cart against the live
// catalog, dropping lines whose product or variant has been deleted.
func openSessionCart(db *gorm.DB, sessionID string) (*cart.Cart, error) {
	return cart.Open(sessionID, &gormCatalog{db: db}, &gormDiscounts{db: db}, &gormSnapshotStore{db: db})
}
