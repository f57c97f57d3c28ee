package errs

// Domain-specific sentinel errors shared by the domain and usecase layers
var (
	// Identity errors
	ErrUnauthenticated = New("unauthenticated")

	// Input errors
	ErrInvalidQuantity = New("quantity must be positive")
	ErrInvalidPrice    = New("price must be positive")
	ErrMissingField    = New("required field is empty")

	// Listing errors
	ErrNoSuchListing     = New("no such listing")
	ErrInsufficientStock = New("insufficient stock")

	// Cart errors
	ErrEmptyCart        = New("cart is empty")
	ErrCartLineNotFound = New("cart line not found")
	ErrCartLineExists   = New("cart line already exists")

	// Auction errors
	ErrAuctionAlreadyOpen = New("auction already open for listing")
	ErrAuctionNotFound    = New("auction not found")
	ErrDuplicateBid       = New("duplicate bid")

	// Notification errors
	ErrInvalidRecipient = New("invalid recipient")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
