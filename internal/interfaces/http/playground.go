package http

import "github.com/gofiber/fiber/v2"

// playgroundHTML página mínima para probar consultas a mano desde el
// navegador. Hace POST al mismo endpoint con {query, variables}.
const playgroundHTML = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <title>StockView GraphQL</title>
  <style>
    body { font-family: monospace; margin: 2rem; background: #f7f7f8; }
    textarea { width: 100%; height: 12rem; font-family: inherit; }
    pre { background: #1e293b; color: #e2e8f0; padding: 1rem; overflow: auto; }
    button { padding: .5rem 1.5rem; margin: .5rem 0; }
  </style>
</head>
<body>
  <h1>StockView — consola GraphQL</h1>
  <textarea id="query">query {
  products(status: "critical") { id name warehouse stock demand }
}</textarea>
  <br>
  <button onclick="run()">Ejecutar</button>
  <pre id="out">—</pre>
  <script>
    async function run() {
      const res = await fetch('/graphql', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({ query: document.getElementById('query').value })
      });
      document.getElementById('out').textContent =
        JSON.stringify(await res.json(), null, 2);
    }
  </script>
</body>
</html>`

// Playground maneja GET /graphql.
func Playground(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(playgroundHTML)
}
