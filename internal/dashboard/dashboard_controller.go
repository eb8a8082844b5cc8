package dashboard

import (
	"html/template"
	"net/http"

	"github.com/DhavalSuthar-24/wolvesboard/internal/common"
	"github.com/DhavalSuthar-24/wolvesboard/internal/lineup"
	"github.com/DhavalSuthar-24/wolvesboard/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// PageTemplate is the template name rendered by ShowDashboard.
const PageTemplate = "dashboard.html"

// DashboardController serves the dashboard page and its JSON snapshot.
type DashboardController struct {
	service          Service
	templates        *template.Template
	teamName         string
	teamAbbreviation string
}

// NewDashboardController creates a new DashboardController.
func NewDashboardController(service Service, templates *template.Template, teamName, teamAbbreviation string) *DashboardController {
	return &DashboardController{
		service:          service,
		templates:        templates,
		teamName:         teamName,
		teamAbbreviation: teamAbbreviation,
	}
}

// DashboardQuery is the query string accepted by the dashboard endpoints.
// Unknown values fall back to their defaults instead of failing.
type DashboardQuery struct {
	Tab    string `form:"tab"`
	Window string `form:"window"`
	Order  string `form:"order"`
}

func (q DashboardQuery) order() lineup.Order {
	order, err := lineup.ParseOrder(q.Order)
	if err != nil {
		return lineup.OrderTop
	}
	return order
}

// ShowDashboard renders the tabbed dashboard page. Backend failures still
// render with whatever was loaded.
func (dc *DashboardController) ShowDashboard(c *gin.Context) {
	var q DashboardQuery
	_ = c.ShouldBindQuery(&q) // plain strings, binding cannot fail

	order := q.order()
	snap, _ := dc.service.Load(c.Request.Context(), LoadOptions{LineupOrder: order})

	page := BuildPage(PageParams{
		TeamName:         dc.teamName,
		TeamAbbreviation: dc.teamAbbreviation,
		Tab:              ParseTab(q.Tab),
		Window:           ParseStatWindow(q.Window),
		Order:            order,
		RequestID:        common.GetRequestIDFromContext(c),
	}, snap)

	c.Render(http.StatusOK, render.HTML{
		Template: dc.templates,
		Name:     PageTemplate,
		Data:     page,
	})
}

// GetDashboard godoc
// @Summary Dashboard snapshot
// @Description Runs the full fetch sequence and returns everything it gathered. A failed query leaves the rest of the snapshot empty and complete=false.
// @Tags Dashboard
// @Produce json
// @Param order query string false "Lineup order: top or bottom" default(top)
// @Success 200 {object} responses.SuccessResponse{data=Snapshot}
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	var q DashboardQuery
	_ = c.ShouldBindQuery(&q)

	snap, err := dc.service.Load(c.Request.Context(), LoadOptions{LineupOrder: q.order()})
	message := "Dashboard loaded successfully"
	if err != nil {
		message = "Dashboard partially loaded"
	}

	responses.SendSuccess(c, http.StatusOK, message, snap)
}

// RedirectToDashboard sends the root path to the dashboard page.
func (dc *DashboardController) RedirectToDashboard(c *gin.Context) {
	c.Redirect(http.StatusFound, "/dashboard")
}
