// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAuthPasswordReset      = "auth.password_reset"

	// Users
	KeyUserNotFound       = "user.not_found"
	KeyUserProfileUpdated = "user.profile_updated"
	KeyUserDeleted        = "user.deleted"

	// Products
	KeyProductNotFound   = "product.not_found"
	KeyProductOutOfStock = "product.out_of_stock"

	// Cart
	KeyCartNotFound    = "cart.not_found"
	KeyCartItemAdded   = "cart.item_added"
	KeyCartItemRemoved = "cart.item_removed"
	KeyCartCleared     = "cart.cleared"
	KeyCartEmpty       = "cart.empty"

	// Checkout
	KeyCheckoutNotFound     = "checkout.not_found"
	KeyCheckoutStepInvalid  = "checkout.step_invalid"
	KeyCheckoutOrderPlaced  = "checkout.order_placed"
	KeyCheckoutCartRequired = "checkout.cart_required"

	// Orders
	KeyOrderNotFound = "order.not_found"

	// Wishlist
	KeyWishlistAdded   = "wishlist.added"
	KeyWishlistRemoved = "wishlist.removed"

	// Contact
	KeyContactReceived = "contact.received"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
)
