package render

// pageTemplate is the single layout every page is rendered with.
const pageTemplate = `{{define "items"}}{{range .}}{{if .Group}}
<details class="group"{{if .Open}} open{{end}}>
    <summary class="cursor-pointer px-4 py-2 text-sm font-semibold text-gray-800">{{.Text}}</summary>
    <div class="pl-3">{{template "items" .Items}}</div>
</details>{{else}}
<a href="{{.Href}}"
   class="block px-4 py-2 rounded-md text-sm font-medium transition-colors
          {{if .Active}} bg-blue-600 text-white shadow-sm {{else}} text-gray-700 hover:bg-gray-200 {{end}}">
   {{.Text}}
</a>{{end}}{{end}}{{end}}{{define "list"}}
<ul>{{range .}}
    <li>{{if .Group}}{{.Text}}{{template "list" .Items}}{{else}}<a href="{{.Href}}">{{.Text}}</a>{{end}}</li>{{end}}
</ul>{{end}}<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} | {{.SiteTitle}}</title>
    {{- if .Description}}
    <meta name="description" content="{{.Description}}">
    {{- end}}
    <script src="https://cdn.tailwindcss.com?plugins=typography"></script>
    <style>
        pre { border-radius: 0.5rem; padding: 1rem; overflow-x: auto; }
    </style>
</head>
<body class="bg-white text-gray-900 h-screen flex flex-col overflow-hidden">

    <header class="flex items-center gap-6 px-6 py-3 border-b border-gray-200">
        <a href="{{.Home}}" class="font-bold text-xl tracking-tight text-gray-800">{{.SiteTitle}}</a>
        <nav class="flex gap-4 text-sm">
            {{- range .Nav}}
            <a href="{{.Href}}" class="{{if .Active}}text-blue-600 font-semibold{{else}}text-gray-700 hover:text-blue-600{{end}}">{{.Text}}</a>
            {{- end}}
        </nav>
        <div class="ml-auto flex gap-3 text-sm">
            {{- range .SocialLinks}}
            <a href="{{.Link}}" class="text-gray-500 hover:text-gray-900">{{.Icon}}</a>
            {{- end}}
        </div>
    </header>

    <div class="flex flex-1 overflow-hidden">
        {{- if .Sidebar}}
        <aside class="w-full md:w-64 bg-gray-100 border-r border-gray-200 flex-shrink-0 overflow-y-auto p-4 space-y-1">
            {{template "items" .Sidebar}}
        </aside>
        {{- end}}

        <main class="flex-1 overflow-y-auto bg-white">
            <div class="max-w-4xl mx-auto px-8 py-12">
                <article class="prose prose-lg prose-slate max-w-none">
                    {{- if .Generated}}
                    <h1>{{.Title}}</h1>
                    {{template "list" .Listing}}
                    {{- else}}
                    {{.Content}}
                    {{- end}}
                </article>
            </div>
        </main>
    </div>

</body>
</html>
`
