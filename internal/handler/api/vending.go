package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vending-server/internal/domain/item"
	"vending-server/internal/domain/vending"
	reqdto "vending-server/internal/handler/dto/request"
	resdto "vending-server/internal/handler/dto/response"
	"vending-server/internal/handler/httperr"
	"vending-server/internal/handler/middleware"
	"vending-server/internal/pkg/errs"
	"vending-server/internal/usecase/commands"
	"vending-server/internal/usecase/queries"
)

var errUnauthorized = errs.New("character not authenticated")

type VendingHandler struct {
	cmds commands.VendingCommands
	q    queries.VendingQueries
}

func NewVendingHandler(cmds commands.VendingCommands, q queries.VendingQueries) *VendingHandler {
	return &VendingHandler{cmds: cmds, q: q}
}

func requireCharacter(c *gin.Context) (int32, bool) {
	id, ok := middleware.GetCharacterID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return 0, false
	}
	return id.CharID, true
}

func paramInt32(c *gin.Context, name string) (int32, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil || v <= 0 {
		if err == nil {
			err = errs.Newf("%s must be positive", name)
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return 0, false
	}
	return int32(v), true
}

// @Summary Prepare vending
// @Description Enter the pre-vend state; requires the vending skill and a cart
// @Tags vending
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vending/prepare [post]
func (h *VendingHandler) Prepare(c *gin.Context) {
	charID, ok := requireCharacter(c)
	if !ok {
		return
	}
	if err := h.cmds.PrepareVending(c.Request.Context(), charID); err != nil {
		httperr.AbortWithDomainError(c, err, "Cannot prepare vending")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Open shop
// @Description Open a shop from cart items; invalid lines are dropped and reported as an event
// @Tags vending
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenShopRequest true "Shop title and lines"
// @Success 201 {object} resdto.OpenShopResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vending/shop [post]
func (h *VendingHandler) Open(c *gin.Context) {
	charID, ok := requireCharacter(c)
	if !ok {
		return
	}
	var req reqdto.OpenShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.OpenShop(c.Request.Context(), charID, req.Title, req.ToLines())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Open shop failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.OpenShopResponse{ShopID: int32(id)})
}

// @Summary Close shop
// @Description Close the caller's shop; closing when not vending is a no-op
// @Tags vending
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} httperr.Response
// @Router /vending/shop [delete]
func (h *VendingHandler) Close(c *gin.Context) {
	charID, ok := requireCharacter(c)
	if !ok {
		return
	}
	if err := h.cmds.CloseShop(c.Request.Context(), charID); err != nil {
		httperr.AbortWithDomainError(c, err, "Close shop failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Switch to autotrade
// @Description Detach the caller and leave the open shop running unattended
// @Tags vending
// @Security BearerAuth
// @Success 204
// @Failure 409 {object} httperr.Response
// @Router /vending/autotrade [post]
func (h *VendingHandler) Autotrade(c *gin.Context) {
	charID, ok := requireCharacter(c)
	if !ok {
		return
	}
	if err := h.cmds.Autotrade(c.Request.Context(), charID); err != nil {
		httperr.AbortWithDomainError(c, err, "Autotrade failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List shops
// @Tags vending
// @Produce json
// @Success 200 {array} resdto.ShopResponse
// @Router /vending/shops [get]
func (h *VendingHandler) ListShops(c *gin.Context) {
	res, err := resdto.FromShopViews(h.q.ListShops(c.Request.Context()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get shop by seller
// @Tags vending
// @Produce json
// @Param charId path int true "Seller character id"
// @Success 200 {object} resdto.ShopResponse
// @Failure 409 {object} httperr.Response
// @Router /vending/shops/{charId} [get]
func (h *VendingHandler) GetShop(c *gin.Context) {
	charID, ok := paramInt32(c, "charId")
	if !ok {
		return
	}
	view, err := h.q.Lookup(c.Request.Context(), charID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Shop not found")
		return
	}
	h.writeShop(c, view)
}

// @Summary Check whether a shop sells an item
// @Tags vending
// @Produce json
// @Param charId path int true "Seller character id"
// @Param itemId path int true "Item id"
// @Success 200 {object} resdto.SellingResponse
// @Router /vending/shops/{charId}/selling/{itemId} [get]
func (h *VendingHandler) IsSelling(c *gin.Context) {
	charID, ok := paramInt32(c, "charId")
	if !ok {
		return
	}
	itemID, ok := paramInt32(c, "itemId")
	if !ok {
		return
	}
	selling := h.q.IsSelling(c.Request.Context(), charID, item.NameID(itemID))
	c.JSON(http.StatusOK, resdto.SellingResponse{Selling: selling})
}

// @Summary Browse a seller's items
// @Description Returns the item list and remembers the shop as the one the caller is viewing
// @Tags vending
// @Produce json
// @Security BearerAuth
// @Param accountId path int true "Seller account id"
// @Success 200 {object} resdto.ShopResponse
// @Failure 409 {object} httperr.Response
// @Router /vending/sellers/{accountId}/items [get]
func (h *VendingHandler) ListItems(c *gin.Context) {
	charID, ok := requireCharacter(c)
	if !ok {
		return
	}
	accountID, ok := paramInt32(c, "accountId")
	if !ok {
		return
	}
	view, err := h.q.ListItems(c.Request.Context(), charID, accountID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Cannot list items")
		return
	}
	h.writeShop(c, view)
}

// @Summary Purchase
// @Description Buy one or more lines from a shop; rejections carry a reason code
// @Tags vending
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseRequest true "Purchase lines"
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /vending/purchase [post]
func (h *VendingHandler) Purchase(c *gin.Context) {
	charID, ok := requireCharacter(c)
	if !ok {
		return
	}
	var req reqdto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	receipt, err := h.cmds.Purchase(c.Request.Context(), charID, req.SellerAccountID, vending.ShopID(req.ShopID), req.ToLines())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Purchase failed")
		return
	}
	res, err := resdto.FromReceipt(receipt)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Search shops
// @Tags vending
// @Accept json
// @Produce json
// @Param request body reqdto.SearchRequest true "Search query"
// @Success 200 {object} resdto.SearchResponse
// @Failure 400 {object} httperr.Response
// @Router /vending/search [post]
func (h *VendingHandler) Search(c *gin.Context) {
	var req reqdto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	results, exhausted := h.q.Search(c.Request.Context(), req.ToQuery(), req.EffectiveLimit())
	res, err := resdto.FromSearchResults(results, exhausted)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Select a search result
// @Description Grants the caller one purchase attempt from the seller regardless of distance
// @Tags vending
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.SelectResultRequest true "Selected result"
// @Success 204
// @Failure 409 {object} httperr.Response
// @Router /vending/search/select [post]
func (h *VendingHandler) SelectResult(c *gin.Context) {
	charID, ok := requireCharacter(c)
	if !ok {
		return
	}
	var req reqdto.SelectResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.q.SelectResult(c.Request.Context(), charID, req.SellerAccountID, vending.ShopID(req.ShopID)); err != nil {
		httperr.AbortWithDomainError(c, err, "Cannot select result")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *VendingHandler) writeShop(c *gin.Context, view *queries.ShopView) {
	res, err := resdto.FromShopView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
