package api_error

import "net/http"

var (
	Unauthenticated = NewFromStr("authorization required", http.StatusUnauthorized)
	NotOwnerOrAdmin = NewFromStr("you are not the owner or an admin of this comment", http.StatusForbidden)
	CommentNotFound = NewFromStr("comment not found", http.StatusNotFound)
	UserNotFound    = NewFromStr("user not found", http.StatusNotFound)
	AvatarNotFound  = NewFromStr("avatar not found", http.StatusNotFound)
	EmptyText       = NewFromStr("comment text is required", http.StatusBadRequest)
	InvalidCat      = NewFromStr("cat must be between 1 and 27", http.StatusBadRequest)
	AlreadyLiked    = NewFromStr("comment already liked", http.StatusConflict)
	NotInLikes      = NewFromStr("you have not liked this comment", http.StatusNotFound)
	EmailTaken      = NewFromStr("email is already taken", http.StatusBadRequest)
	IncorrectCode   = NewFromStr("incorrect code", http.StatusBadRequest)
	InvalidCodeForm = NewFromStr("invalid code format, expected a 6-digit code", http.StatusBadRequest)
)
