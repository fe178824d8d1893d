package services

import (
	"context"
	"sync"

	"aliccedress/apperror"
	"aliccedress/models"

	"github.com/rs/zerolog/log"
)

// Navigator is the page shell of the storefront. It owns the cart and the
// profile stores and runs every operation under one mutex, so each call
// completes, storage write included, before the next one starts.
type Navigator struct {
	mu sync.Mutex

	catalog  *CatalogService
	cart     *CartStore
	profile  *ProfileStore
	checkout CheckoutHandler
	receipts *ReceiptSigner
	notifier OrderNotifier

	state models.NavigationState
}

type NavigatorOption func(*Navigator)

// WithCheckoutHandler replaces the default confirmation handler.
func WithCheckoutHandler(h CheckoutHandler) NavigatorOption {
	return func(n *Navigator) { n.checkout = h }
}

func WithReceiptSigner(s *ReceiptSigner) NavigatorOption {
	return func(n *Navigator) { n.receipts = s }
}

func WithOrderNotifier(notifier OrderNotifier) NavigatorOption {
	return func(n *Navigator) { n.notifier = notifier }
}

func NewNavigator(catalog *CatalogService, cart *CartStore, profile *ProfileStore, opts ...NavigatorOption) *Navigator {
	n := &Navigator{
		catalog: catalog,
		cart:    cart,
		profile: profile,
		state:   models.NavigationState{Page: models.PageHome},
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.checkout == nil {
		n.checkout = NewConfirmationCheckout(n.receipts)
	}
	return n
}

func (n *Navigator) State() models.NavigationState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stateLocked()
}

func (n *Navigator) NavigateHome() models.NavigationState {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.goHome()
	return n.stateLocked()
}

func (n *Navigator) NavigateCatalog() models.NavigationState {
	return n.setPage(models.PageCatalog)
}

func (n *Navigator) OpenCart() models.NavigationState {
	return n.setPage(models.PageCart)
}

func (n *Navigator) OpenProfile() models.NavigationState {
	return n.setPage(models.PageProfile)
}

// SelectProduct opens the detail page for id. Unknown ids are accepted;
// the detail page then renders its not-found state.
func (n *Navigator) SelectProduct(id int) models.NavigationState {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.Page = models.PageProduct
	n.state.SelectedProductID = &id
	return n.stateLocked()
}

// Back returns to the home page.
func (n *Navigator) Back() models.NavigationState {
	return n.NavigateHome()
}

func (n *Navigator) CurrentProduct() models.ProductDetailView {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state.SelectedProductID == nil {
		return models.ProductDetailView{Found: false}
	}
	return n.catalog.Detail(*n.state.SelectedProductID)
}

func (n *Navigator) Cart() models.CartSummary {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cart.Summary()
}

func (n *Navigator) AddToCart(ctx context.Context, productID int) (models.CartSummary, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	product, ok := n.catalog.Find(productID)
	if !ok {
		return models.CartSummary{}, apperror.ErrProductNotFound
	}
	if err := n.cart.AddItem(ctx, product); err != nil {
		return models.CartSummary{}, err
	}
	return n.cart.Summary(), nil
}

func (n *Navigator) UpdateQuantity(ctx context.Context, id, quantity int) (models.CartSummary, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.cart.UpdateQuantity(ctx, id, quantity); err != nil {
		return models.CartSummary{}, err
	}
	return n.cart.Summary(), nil
}

func (n *Navigator) RemoveItem(ctx context.Context, id int) (models.CartSummary, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.cart.RemoveItem(ctx, id); err != nil {
		return models.CartSummary{}, err
	}
	return n.cart.Summary(), nil
}

func (n *Navigator) ClearCart(ctx context.Context) (models.CartSummary, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.cart.Clear(ctx); err != nil {
		return models.CartSummary{}, err
	}
	return n.cart.Summary(), nil
}

// Checkout hands the cart to the checkout handler, then clears the cart
// and returns to the home page. An empty cart is rejected. The customer
// is notified only once the cart is cleared, outside the lock.
func (n *Navigator) Checkout(ctx context.Context) (*models.OrderConfirmation, error) {
	confirmation, err := n.confirmOrder(ctx)
	if err != nil {
		return nil, err
	}
	n.notify(ctx, *confirmation)
	return confirmation, nil
}

func (n *Navigator) confirmOrder(ctx context.Context) (*models.OrderConfirmation, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.cart.IsEmpty() {
		return nil, apperror.ErrCartEmpty
	}

	order := models.OrderRequest{
		Items:     n.cart.Items(),
		Total:     n.cart.Total(),
		ItemCount: n.cart.ItemCount(),
		Customer:  n.profile.Session().CurrentProfile,
	}
	confirmation, err := n.checkout.Checkout(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := n.cart.Clear(ctx); err != nil {
		return nil, err
	}
	n.goHome()

	log.Info().
		Str("order_number", confirmation.OrderNumber).
		Int("total", confirmation.Total).
		Int("item_count", confirmation.ItemCount).
		Msg("order confirmed")
	return confirmation, nil
}

// notify sends the order confirmation. Failures are logged only.
func (n *Navigator) notify(ctx context.Context, confirmation models.OrderConfirmation) {
	if n.notifier == nil || confirmation.CustomerEmail == "" {
		return
	}
	if err := n.notifier.SendOrderConfirmation(ctx, confirmation.CustomerEmail, confirmation); err != nil {
		log.Error().Err(err).
			Str("order_number", confirmation.OrderNumber).
			Msg("failed to send order confirmation")
	}
}

func (n *Navigator) VerifyReceipt(token string) (*models.ReceiptClaims, error) {
	if n.receipts == nil {
		return nil, apperror.New(apperror.CodeNotFound, "receipts are disabled")
	}
	return n.receipts.Verify(token)
}

func (n *Navigator) Profile() models.ProfileView {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.profile.View()
}

func (n *Navigator) IsLoggedIn() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.profile.IsLoggedIn()
}

func (n *Navigator) Login(ctx context.Context, email, password string) (models.UserProfile, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.profile.Login(ctx, email, password)
}

func (n *Navigator) Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.profile.Register(ctx, req)
}

func (n *Navigator) RequestLogout() (models.ProfileView, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.profile.RequestLogout(); err != nil {
		return models.ProfileView{}, err
	}
	return n.profile.View(), nil
}

func (n *Navigator) CancelLogout() (models.ProfileView, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.profile.CancelLogout(); err != nil {
		return models.ProfileView{}, err
	}
	return n.profile.View(), nil
}

func (n *Navigator) ConfirmLogout(ctx context.Context) (models.ProfileView, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.profile.ConfirmLogout(ctx); err != nil {
		return models.ProfileView{}, err
	}
	return n.profile.View(), nil
}

func (n *Navigator) StartEditing() (models.ProfileView, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.profile.StartEditing(); err != nil {
		return models.ProfileView{}, err
	}
	return n.profile.View(), nil
}

func (n *Navigator) UpdateDraft(fields models.ProfileFields) (models.ProfileView, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.profile.UpdateDraft(fields); err != nil {
		return models.ProfileView{}, err
	}
	return n.profile.View(), nil
}

func (n *Navigator) CancelEditing() models.ProfileView {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.profile.CancelEditing()
	return n.profile.View()
}

func (n *Navigator) SaveProfile(ctx context.Context, fields models.ProfileFields) (models.ProfileView, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := n.profile.SaveProfile(ctx, fields); err != nil {
		return models.ProfileView{}, err
	}
	return n.profile.View(), nil
}

func (n *Navigator) SetAvatar(ctx context.Context, url string) (models.ProfileView, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := n.profile.SetAvatar(ctx, url); err != nil {
		return models.ProfileView{}, err
	}
	return n.profile.View(), nil
}

func (n *Navigator) setPage(page models.Page) models.NavigationState {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.Page = page
	return n.stateLocked()
}

func (n *Navigator) goHome() {
	n.state.Page = models.PageHome
	n.state.SelectedProductID = nil
}

func (n *Navigator) stateLocked() models.NavigationState {
	state := models.NavigationState{Page: n.state.Page}
	if n.state.SelectedProductID != nil {
		id := *n.state.SelectedProductID
		state.SelectedProductID = &id
	}
	return state
}
