//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"pricewatch/internal/handler/api"
	resdto "pricewatch/internal/handler/dto/response"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/usecase/queries"
	"pricewatch/tests/common/builder"
	commonhttp "pricewatch/tests/common/httptest"
	queriesmock "pricewatch/tests/mock/queries"
)

type CatalogHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	queries *queriesmock.MockCatalogQueries
	router  *gin.Engine
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerSuite))
}

func (s *CatalogHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.queries = queriesmock.NewMockCatalogQueries(s.ctrl)

	h := api.NewCatalogHandler(s.queries)
	s.router = gin.New()
	s.router.GET("/api/items", h.List)
	s.router.GET("/api/items/:id", h.Get)
	s.router.GET("/api/items/:id/price-history", h.PriceHistory)
}

func (s *CatalogHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CatalogHandlerSuite) TestList_FirstPage() {
	items := []*queries.ItemListItem{
		{ID: "itm-1", Name: "Alpha", CoverURL: "https://img.example/a.jpg"},
		{ID: "itm-2", Name: "Beta"},
	}
	next := &queries.Cursor{After: queries.EncodeAfterCursor("Beta", "itm-2")}
	s.queries.EXPECT().ListItems(gomock.Any(), nil, 2).Return(items, next, int64(5), nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items?limit=2", nil)

	var resp resdto.ItemListResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	require.Len(s.T(), resp.Data, 2)
	assert.Equal(s.T(), int64(5), resp.Total)
	assert.Equal(s.T(), next.After, resp.Next)
	assert.Equal(s.T(), "Alpha", resp.Data[0].Name)
}

func (s *CatalogHandlerSuite) TestList_WithCursor() {
	after := queries.EncodeAfterCursor("Beta", "itm-2")
	s.queries.EXPECT().ListItems(gomock.Any(), &queries.Cursor{After: after}, 0).
		Return([]*queries.ItemListItem{}, nil, int64(5), nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items?after="+after, nil)

	var resp resdto.ItemListResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	assert.Empty(s.T(), resp.Next)
}

func (s *CatalogHandlerSuite) TestList_InvalidCursor() {
	s.queries.EXPECT().ListItems(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil, int64(0), queries.ErrInvalidCursor)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items?after=broken", nil)

	commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid cursor")
}

func (s *CatalogHandlerSuite) TestGet_Found() {
	view := &queries.ItemView{ID: "itm-1", Name: "Alpha"}
	s.queries.EXPECT().GetItem(gomock.Any(), "itm-1").Return(view, nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items/itm-1", nil)

	var resp resdto.ItemResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	assert.Equal(s.T(), "itm-1", resp.ID)
	assert.Equal(s.T(), "Alpha", resp.Name)
}

func (s *CatalogHandlerSuite) TestGet_NotFound() {
	s.queries.EXPECT().GetItem(gomock.Any(), "itm-missing").Return(nil, errs.ErrItemNotFound)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items/itm-missing", nil)

	commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Item not found")
}

func (s *CatalogHandlerSuite) TestPriceHistory() {
	views := []*queries.SnapshotView{
		{ItemID: "itm-1", CapturedAt: builder.MustTime("2025-01-05"), Editions: []queries.EditionView{{Name: "Standard", Price: "39,99"}}},
		{ItemID: "itm-1", CapturedAt: builder.MustTime("2025-01-01"), Editions: []queries.EditionView{{Name: "Standard", Price: "59,99"}}},
	}
	s.queries.EXPECT().GetPriceHistory(gomock.Any(), "itm-1").Return(views, nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items/itm-1/price-history", nil)

	var resp resdto.PriceHistoryResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	require.Len(s.T(), resp.Data, 2)
	assert.Equal(s.T(), "39,99", resp.Data[0].Editions[0].Price)
}
