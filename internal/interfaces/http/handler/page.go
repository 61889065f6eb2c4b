package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-enhancer-api/internal/application/enhancer"
	"prompt-enhancer-api/internal/domain/entity"
	"prompt-enhancer-api/internal/interfaces/http/dto"
	"prompt-enhancer-api/internal/interfaces/http/web"
	apperrors "prompt-enhancer-api/pkg/errors"
)

// PageHandler 单页表单：GET 渲染空表单，POST 提交并在同一页展示结果
type PageHandler struct {
	enhancer Enhancer
	limits   entity.WordLimitRange
	version  string
}

// pageView 页面渲染数据；API Key 不回显
type pageView struct {
	Form    dto.EnhanceRequest
	Limits  entity.WordLimitRange
	Result  string
	Warning string
	Error   string
	Version string
}

// NewPageHandler 创建页面处理器
func NewPageHandler(e Enhancer, limits entity.WordLimitRange, version string) *PageHandler {
	return &PageHandler{enhancer: e, limits: limits, version: version}
}

// Index 渲染空表单
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, web.IndexTemplate, h.view(dto.EnhanceRequest{WordLimit: h.limits.Default}))
}

// Submit 处理表单提交
func (h *PageHandler) Submit(c *gin.Context) {
	var form dto.EnhanceRequest
	if err := c.ShouldBind(&form); err != nil {
		v := h.view(form)
		v.Error = "Invalid form submission: " + err.Error()
		c.HTML(http.StatusBadRequest, web.IndexTemplate, v)
		return
	}
	form.WordLimit = h.limits.Clamp(form.WordLimit)

	out := h.enhancer.Enhance(c.Request.Context(), form.APIKey, form.ToPromptRequest())

	v := h.view(form)
	switch {
	case out.OK():
		v.Result = out.Text
	case out.Kind == enhancer.OutcomeValidationError && out.Code == apperrors.CodeInvalidParam:
		v.Warning = out.Message
	default:
		v.Error = out.Message
	}
	c.HTML(out.HTTPStatus(), web.IndexTemplate, v)
}

func (h *PageHandler) view(form dto.EnhanceRequest) pageView {
	form.APIKey = ""
	return pageView{
		Form:    form,
		Limits:  h.limits,
		Version: h.version,
	}
}
