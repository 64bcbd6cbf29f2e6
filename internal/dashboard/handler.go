package dashboard

import (
	"net/http"
	"strings"

	"pharmadmin/internal/catalog"
	"pharmadmin/internal/fetcher"
	"pharmadmin/internal/record"
	"pharmadmin/internal/view"
	"pharmadmin/pkg/flash"
	"pharmadmin/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler 管理台页面处理器。
// 页面都在服务端渲染，数据全部经资源API拉取，本地不落库。
type Handler struct {
	api     *fetcher.Client
	notices *flash.Store
}

func NewHandler(api *fetcher.Client, notices *flash.Store) *Handler {
	return &Handler{
		api:     api,
		notices: notices,
	}
}

// roleContext 解析路径里的角色，未知角色直接404
func (h *Handler) roleContext(c *gin.Context) (catalog.Role, bool) {
	role := catalog.Role(c.Param("role"))
	if !catalog.Valid(role) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Title":  "未知角色",
			"Detail": "角色不存在",
		})
		return "", false
	}
	return role, true
}

// tableContext 解析角色和表，角色看不到的表一律404
func (h *Handler) tableContext(c *gin.Context) (catalog.Role, catalog.TableDescriptor, bool) {
	role, ok := h.roleContext(c)
	if !ok {
		return "", catalog.TableDescriptor{}, false
	}
	desc, ok := catalog.Find(role, c.Param("table"))
	if !ok {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Title":  "未知表",
			"Detail": "该角色没有这张表的访问权限",
		})
		return "", catalog.TableDescriptor{}, false
	}
	return role, desc, true
}

// pathID 取通配路径段里的记录标识，复合主键按路径分隔
func pathID(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("id"), "/")
}

// takeNotice 用一次性令牌兑换提示文案
func (h *Handler) takeNotice(c *gin.Context) string {
	token := c.Query("notice")
	if token == "" {
		return ""
	}
	return h.notices.Take(c.Request.Context(), token)
}

// putNotice 存提示文案，失败时降级为不带提示的跳转
func (h *Handler) putNotice(c *gin.Context, message string) string {
	token, err := h.notices.Put(c.Request.Context(), message)
	if err != nil {
		logger.GetLogger().Warnf("存提示信息失败: %v", err)
		return ""
	}
	return token
}

// RoleSelection 首页：角色选择
func (h *Handler) RoleSelection(c *gin.Context) {
	type roleItem struct {
		ID    catalog.Role
		Title string
	}
	var roles []roleItem
	for _, role := range catalog.Roles() {
		roles = append(roles, roleItem{ID: role, Title: catalog.Title(role)})
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Roles": roles,
	})
}

// TablesList 角色可见的表清单
func (h *Handler) TablesList(c *gin.Context) {
	role, ok := h.roleContext(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "tables.html", gin.H{
		"Role":   role,
		"Title":  catalog.Title(role),
		"Tables": catalog.Tables(role),
	})
}

// TableView 表数据页。拉取失败渲染错误态，不自动重试。
func (h *Handler) TableView(c *gin.Context) {
	role, desc, ok := h.tableContext(c)
	if !ok {
		return
	}

	collection, err := h.api.FetchCollection(c.Request.Context(), desc.Endpoint)
	if err != nil {
		c.HTML(http.StatusOK, "table_view.html", gin.H{
			"Role":   role,
			"Table":  desc,
			"Title":  catalog.Title(role),
			"Error":  err.Error(),
			"Notice": h.takeNotice(c),
		})
		return
	}

	ops := desc.Access.Operations()
	c.HTML(http.StatusOK, "table_view.html", gin.H{
		"Role":      role,
		"Table":     desc,
		"Title":     catalog.Title(role),
		"View":      view.RenderTable(collection, desc.ID, desc.Access),
		"CanCreate": ops.Create,
		"Notice":    h.takeNotice(c),
	})
}

// CreateForm 创建表单页
func (h *Handler) CreateForm(c *gin.Context) {
	role, desc, ok := h.tableContext(c)
	if !ok {
		return
	}
	if !desc.Access.Operations().Create {
		c.HTML(http.StatusForbidden, "error.html", gin.H{
			"Title":  "没有权限",
			"Detail": "该角色不能在这张表里创建记录",
		})
		return
	}

	collection, err := h.api.FetchCollection(c.Request.Context(), desc.Endpoint)
	if err != nil {
		collection = &record.Collection{}
	}

	draft := view.BuildCreateDraft(collection, desc.ID)
	h.renderForm(c, role, desc, view.BuildForm(draft, desc.ID, view.ModeCreate, collection.Labels))
}

// Create 处理创建提交。
// 失败时表单带着草稿和detail原样回显，成功时跳转回表页并带提示。
func (h *Handler) Create(c *gin.Context) {
	role, desc, ok := h.tableContext(c)
	if !ok {
		return
	}
	if !desc.Access.Operations().Create {
		c.HTML(http.StatusForbidden, "error.html", gin.H{
			"Title":  "没有权限",
			"Detail": "该角色不能在这张表里创建记录",
		})
		return
	}

	draft := h.parseDraft(c)
	payload := view.PrepareSubmit(draft, desc.ID, view.ModeCreate)

	if _, err := h.api.Create(c.Request.Context(), desc.Endpoint, payload); err != nil {
		form := view.BuildForm(draft, desc.ID, view.ModeCreate, h.fetchLabels(c, desc.Endpoint))
		form.Detail = err.Error()
		h.renderForm(c, role, desc, form)
		return
	}

	h.redirectWithNotice(c, role, desc, "创建成功")
}

// EditForm 编辑表单页，按标识在集合里找到所点的行
func (h *Handler) EditForm(c *gin.Context) {
	role, desc, ok := h.tableContext(c)
	if !ok {
		return
	}
	if !desc.Access.Operations().Edit {
		c.HTML(http.StatusForbidden, "error.html", gin.H{
			"Title":  "没有权限",
			"Detail": "该角色不能编辑这张表",
		})
		return
	}

	id := pathID(c)
	collection, err := h.api.FetchCollection(c.Request.Context(), desc.Endpoint)
	if err != nil {
		c.HTML(http.StatusOK, "error.html", gin.H{
			"Title":  "加载失败",
			"Detail": err.Error(),
		})
		return
	}

	var target *record.Record
	for _, rec := range collection.Records {
		if view.RecordIdentity(rec, desc.ID) == id {
			target = rec
			break
		}
	}
	if target == nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Title":  "记录不存在",
			"Detail": "要编辑的记录已不在列表里",
		})
		return
	}

	draft := view.BuildEditDraft(target)
	h.renderForm(c, role, desc, view.BuildForm(draft, desc.ID, view.ModeEdit, collection.Labels))
}

// Update 处理编辑提交
func (h *Handler) Update(c *gin.Context) {
	role, desc, ok := h.tableContext(c)
	if !ok {
		return
	}
	if !desc.Access.Operations().Edit {
		c.HTML(http.StatusForbidden, "error.html", gin.H{
			"Title":  "没有权限",
			"Detail": "该角色不能编辑这张表",
		})
		return
	}

	id := pathID(c)
	draft := h.parseDraft(c)
	payload := view.PrepareSubmit(draft, desc.ID, view.ModeEdit)

	if _, err := h.api.Update(c.Request.Context(), desc.Endpoint, id, payload); err != nil {
		form := view.BuildForm(draft, desc.ID, view.ModeEdit, h.fetchLabels(c, desc.Endpoint))
		form.RecordID = id
		form.Detail = err.Error()
		h.renderForm(c, role, desc, form)
		return
	}

	h.redirectWithNotice(c, role, desc, "保存成功")
}

// Delete 处理删除。确认步骤在页面上完成，这里直接发删除并回表页。
func (h *Handler) Delete(c *gin.Context) {
	role, desc, ok := h.tableContext(c)
	if !ok {
		return
	}
	if !desc.Access.Operations().Delete {
		c.HTML(http.StatusForbidden, "error.html", gin.H{
			"Title":  "没有权限",
			"Detail": "该角色不能删除这张表的记录",
		})
		return
	}

	id := pathID(c)
	if err := h.api.Delete(c.Request.Context(), desc.Endpoint, id); err != nil {
		token := h.putNotice(c, "删除失败: "+err.Error())
		h.redirectWithToken(c, role, desc, token)
		return
	}

	h.redirectWithNotice(c, role, desc, "删除成功")
}

// parseDraft 按提交的字段序还原草稿
func (h *Handler) parseDraft(c *gin.Context) *record.Record {
	_ = c.Request.ParseForm()
	fieldOrder := c.PostFormArray("__field")
	return view.ParseSubmission(c.Request.PostForm, fieldOrder)
}

// fetchLabels 提交失败回显表单时补拉一次字段标题，拉不到就退回字段名
func (h *Handler) fetchLabels(c *gin.Context, endpoint string) map[string]string {
	collection, err := h.api.FetchCollection(c.Request.Context(), endpoint)
	if err != nil {
		return nil
	}
	return collection.Labels
}

func (h *Handler) renderForm(c *gin.Context, role catalog.Role, desc catalog.TableDescriptor, form *view.Form) {
	status := http.StatusOK
	c.HTML(status, "form.html", gin.H{
		"Role":  role,
		"Table": desc,
		"Title": catalog.Title(role),
		"Form":  form,
	})
}

func (h *Handler) redirectWithNotice(c *gin.Context, role catalog.Role, desc catalog.TableDescriptor, message string) {
	h.redirectWithToken(c, role, desc, h.putNotice(c, message))
}

func (h *Handler) redirectWithToken(c *gin.Context, role catalog.Role, desc catalog.TableDescriptor, token string) {
	target := "/roles/" + string(role) + "/tables/" + desc.ID
	if token != "" {
		target += "?notice=" + token
	}
	c.Redirect(http.StatusSeeOther, target)
}
