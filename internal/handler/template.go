package handler

import "html/template"

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="{{.Lang}}">
<head>
  <meta charset="utf-8">
  <title>{{.T "title"}}</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>
    body { font-family: system-ui, -apple-system, Segoe UI, Roboto, sans-serif; max-width: 640px; margin: 32px auto; padding: 0 16px; }
    h1 { font-size: 24px; margin: 0 0 16px 0; }
    label { display: block; margin: 14px 0 6px 0; font-weight: 600; }
    select, input[type="number"] { padding: 8px; border: 1px solid #ddd; border-radius: 8px; }
    .btn { margin-top: 18px; padding: 10px 16px; border: 0; background: #ff4b4b; color: #fff; border-radius: 8px; cursor: pointer; }
    .btn:disabled { background: #ccc; cursor: not-allowed; }
    .muted { color: #666; font-size: 13px; }
    .info { background: #e8f1fb; padding: 10px 12px; border-radius: 8px; }
    .lang { float: right; font-size: 14px; }
    footer { margin-top: 32px; border-top: 1px solid #eee; padding-top: 12px; }
  </style>
</head>
<body>
  <a class="lang" id="lang-toggle" href="{{.OtherURL}}">{{.T "other_language"}}</a>
  <h1>📄 {{.T "title"}}</h1>

  <form method="get" action="/" id="tool-form">
    <label for="tool">{{.T "choose_tool"}}</label>
    <select name="tool" id="tool" onchange="this.form.submit()">
      {{range .Tools}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
      {{end}}
    </select>
    <input type="hidden" name="lang" value="{{.Lang}}">
    <noscript><button type="submit">OK</button></noscript>
  </form>

  <form method="post" action="{{.Action}}" enctype="multipart/form-data" id="op-form" data-tool="{{.Tool}}">
    <input type="hidden" name="lang" value="{{.Lang}}">
    {{if eq .Tool "merge"}}
      <label for="files">{{.T "upload_many"}}</label>
      <input type="file" id="files" name="files" accept="application/pdf,.pdf" multiple required>
    {{else}}
      <label for="file">{{.T "upload_one"}}</label>
      <input type="file" id="file" name="file" accept="application/pdf,.pdf" required>
    {{end}}

    {{if eq .Tool "rotate"}}
      <label for="angle">{{.T "rotate_by"}}</label>
      <select name="angle" id="angle">
        {{range .Angles}}<option value="{{.}}">{{.}}°</option>
        {{end}}
      </select>
    {{end}}

    {{if eq .Tool "split"}}
      <p class="info" id="single-page" hidden>{{.T "single_page"}}</p>
      <label for="at">{{.T "split_at"}}</label>
      <input type="number" id="at" name="at" min="1" value="1" step="1">
      <span class="muted" id="page-count"></span>
    {{end}}

    {{if eq .Tool "extract"}}
      <label for="page">{{.T "page_number"}}</label>
      <input type="number" id="page" name="page" min="1" value="1" step="1">
      <span class="muted" id="page-count"></span>
    {{end}}

    {{if eq .Tool "compress"}}
      <p class="muted">{{.T "compress_tip"}}</p>
    {{end}}

    <button class="btn" type="submit" id="submit" disabled>{{.ToolLabel}}</button>
  </form>

  <footer class="muted">🔒 {{.T "privacy"}}</footer>

  <script>
  (function () {
    var form = document.getElementById("op-form");
    var tool = form.dataset.tool;
    var submit = document.getElementById("submit");
    var input = document.getElementById(tool === "merge" ? "files" : "file");
    var pageCountText = {{.T "page_count" 0}};

    function bound(count) {
      var field = document.getElementById(tool === "split" ? "at" : "page");
      if (!field) { return true; }
      var max = tool === "split" ? count - 1 : count;
      field.max = String(max);
      if (Number(field.value) > max) { field.value = String(Math.max(1, max)); }
      var label = document.getElementById("page-count");
      if (label) { label.textContent = pageCountText.replace("0", String(count)); }
      if (tool === "split") {
        document.getElementById("single-page").hidden = count >= 2;
        field.disabled = count < 2;
        return count >= 2;
      }
      return true;
    }

    input.addEventListener("change", function () {
      var n = input.files ? input.files.length : 0;
      submit.disabled = tool === "merge" ? n < 2 : n < 1;
      if (n < 1 || (tool !== "split" && tool !== "extract")) { return; }
      var body = new FormData();
      body.append("file", input.files[0]);
      fetch("/api/v1/pdf/info", { method: "POST", body: body })
        .then(function (r) { return r.ok ? r.json() : null; })
        .then(function (info) { if (info) { submit.disabled = !bound(info.page_count); } });
    });
  })();
  </script>
</body>
</html>
`))
