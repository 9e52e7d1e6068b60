package services

import (
	"github.com/thryft-app/thryft/internal/auth"
	"github.com/thryft-app/thryft/internal/errors"
)

// Service errors
var (
	ErrUsernameRequired   = errors.Validation("username is required")
	ErrPasswordTooShort   = errors.Validationf("password must be at least %d characters", auth.MinPassword)
	ErrUsernameTaken      = errors.Conflict("username is already taken")
	ErrBadCredentials     = errors.Unauthorized("invalid username or password")
	ErrItemNameRequired   = errors.Validation("item name is required")
	ErrItemImageRequired  = errors.Validation("item image is required")
	ErrUnknownCategory    = errors.Validation("unknown category")
	ErrItemNotFound       = errors.NotFound("closet item not found")
	ErrCategoryName       = errors.Validation("category name is required")
	ErrCategoryExists     = errors.Conflict("category already exists")
	ErrCategoryNotFound   = errors.NotFound("category not found")
	ErrReassignRequired   = errors.Validation("items use this category; choose a category to move them to")
	ErrInvalidReassign    = errors.Validation("invalid reassign target")
	ErrInvalidSort        = errors.Validation("sort must be one of newest, oldest, az, za")
	ErrOutfitNotFound     = errors.NotFound("outfit not found")
	ErrOutfitNameRequired = errors.Validation("outfit name is required")
	ErrTooManyTags        = errors.Validationf("an outfit can have at most %d tags", MaxOutfitTags)
	ErrEmptyCloset        = errors.Precondition("your closet is empty; add some items first")
	ErrNothingEquipped    = errors.Precondition("nothing is equipped")
)
