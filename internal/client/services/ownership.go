package services

import "github.com/dmitrijs2005/gophblog/internal/client/models"

// CanEdit reports whether viewer owns the resource. It only decides which
// actions to offer; the server still enforces ownership.
func CanEdit(viewer *models.User, ownerID int64) bool {
	return viewer != nil && viewer.ID > 0 && viewer.ID == ownerID
}
