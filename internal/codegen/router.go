package codegen

import "strings"

type route struct {
	path   string
	target string // template id, or template file in lazy mode
}

// routerScript emits the client-side router. In lazy mode routes map to
// template files fetched on demand; otherwise to inline <template> ids.
func routerScript(routes []route, lazy bool) string {
	var sb strings.Builder
	line := func(s string) {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}

	line("  <script>")
	if lazy {
		line("    // HTMS Router - lazy-loading template routing")
	} else {
		line("    // HTMS Router - template-based client-side routing")
	}
	line("    const routes = {")
	for _, r := range routes {
		line("      '" + jsString(r.path) + "': '" + jsString(r.target) + "',")
	}
	line("    };")
	line("")

	if lazy {
		line("    const templateCache = new Map();")
		line("")
		line("    async function loadTemplate(url) {")
		line("      if (templateCache.has(url)) {")
		line("        return templateCache.get(url);")
		line("      }")
		line("      const response = await fetch(url);")
		line("      const html = await response.text();")
		line("      templateCache.set(url, html);")
		line("      return html;")
		line("    }")
		line("")
		line("    async function renderPage() {")
		line("      const path = window.location.pathname;")
		line("      const templateUrl = routes[path] || routes['/'];")
		line("      const app = document.getElementById('app');")
		line("      if (!templateUrl) {")
		line("        app.innerHTML = '<h1>404 - Page Not Found</h1>';")
		line("        return;")
		line("      }")
		line("      try {")
		line("        app.innerHTML = await loadTemplate(templateUrl);")
		line("      } catch (error) {")
		line("        console.error('Failed to load template:', error);")
		line("        app.innerHTML = '<h1>Error loading page</h1>';")
		line("      }")
		line("    }")
	} else {
		line("    function renderPage() {")
		line("      const path = window.location.pathname;")
		line("      const templateId = routes[path] || routes['/'];")
		line("      let app = document.getElementById('app');")
		line("      if (!app) {")
		line("        app = document.createElement('div');")
		line("        app.id = 'app';")
		line("        document.body.appendChild(app);")
		line("      }")
		line("      if (!templateId) {")
		line("        app.innerHTML = '<h1>404 - Page Not Found</h1>';")
		line("        return;")
		line("      }")
		line("      const template = document.getElementById(templateId);")
		line("      if (!template) {")
		line("        console.error('Template not found:', templateId);")
		line("        return;")
		line("      }")
		line("      app.innerHTML = '';")
		line("      app.appendChild(template.content.cloneNode(true));")
		line("    }")
	}
	line("")
	line("    document.addEventListener('click', (e) => {")
	line("      const link = e.target.closest('a');")
	line("      if (link && link.href && link.origin === window.location.origin) {")
	line("        e.preventDefault();")
	line("        window.history.pushState({}, '', link.pathname);")
	line("        renderPage();")
	line("      }")
	line("    });")
	line("    window.addEventListener('popstate', renderPage);")
	line("    window.addEventListener('load', renderPage);")
	line("  </script>")
	return sb.String()
}

var jsEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "</", `<\/`)

func jsString(s string) string {
	return jsEscaper.Replace(s)
}
