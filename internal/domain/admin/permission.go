package admin

// Capability representa uma ação do painel liberada para um papel
type Capability string

const (
	CapDashboardView  Capability = "dashboard:view"
	CapProductsView   Capability = "products:view"
	CapProductsManage Capability = "products:manage"
	CapAdminsView     Capability = "admins:view"
	CapAdminsManage   Capability = "admins:manage"
)

var roleCapabilities = map[Role][]Capability{
	RoleSuperAdmin: {CapDashboardView, CapProductsView, CapProductsManage, CapAdminsView, CapAdminsManage},
	RoleEditor:     {CapDashboardView, CapProductsView, CapProductsManage},
	RoleViewer:     {CapDashboardView, CapProductsView},
}

// VisibleActions retorna as capacidades de um papel.
// Papéis desconhecidos não recebem nenhuma.
func VisibleActions(role Role) []Capability {
	caps := roleCapabilities[role]
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// Can verifica se o papel possui a capacidade
func Can(role Role, capability Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == capability {
			return true
		}
	}
	return false
}

// MenuItem representa uma entrada do menu lateral do painel
type MenuItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

var menu = []struct {
	item     MenuItem
	required Capability
}{
	{MenuItem{Name: "Dashboard", Path: "/admin"}, CapDashboardView},
	{MenuItem{Name: "Produtos", Path: "/admin/products"}, CapProductsView},
	{MenuItem{Name: "Administradores", Path: "/admin/admins"}, CapAdminsView},
}

// MenuFor retorna os itens de menu visíveis para o papel
func MenuFor(role Role) []MenuItem {
	items := make([]MenuItem, 0, len(menu))
	for _, m := range menu {
		if Can(role, m.required) {
			items = append(items, m.item)
		}
	}
	return items
}
