package export

import (
	"html/template"
	"io"
)

// helperPageTmpl lists the calendar links and opens them one at a time, so
// the user can confirm each event without a popup storm.
var helperPageTmpl = template.Must(template.New("helper").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Adding Assignments to Google Calendar</title>
<meta charset="UTF-8">
<style>
body { font-family: Arial, sans-serif; padding: 20px; max-width: 700px; margin: 0 auto; line-height: 1.6; }
h1 { color: #4285f4; }
.instructions { background: #f9f9f9; padding: 15px; border-radius: 8px; margin: 20px 0; }
.assignment { margin-bottom: 10px; padding: 8px; border-radius: 4px; background: #f0f0f0; }
.assignment.done { background: #e6f4ea; color: #137333; }
.warning { background: #fff3cd; color: #856404; padding: 10px; border-radius: 4px; margin-bottom: 15px; }
button { background: #4285f4; color: white; border: none; padding: 10px 18px; border-radius: 4px; cursor: pointer; font-size: 14px; }
button:hover { background: #3367d6; }
</style>
</head>
<body>
<h1>Adding Assignments to Google Calendar</h1>
<div class="warning"><strong>Important:</strong> your browser may block popups. Allow popups for this page to add all assignments.</div>
<div class="instructions">
<p><strong>Do not close this window</strong> until all assignments are added.</p>
<p>Calendar tabs open one by one. For each tab: click "Save" in Google Calendar, then come back and press Next.</p>
</div>
{{range $i, $ev := .}}
<div class="assignment" id="item-{{$i}}"><a href="{{$ev.URL}}" target="_blank">{{$ev.Title}}</a></div>
{{end}}
<button onclick="openNext()">Next</button>
<script>
var current = 0;
var total = {{len .}};
function openNext() {
  if (current >= total) return;
  var item = document.getElementById('item-' + current);
  item.classList.add('done');
  window.open(item.querySelector('a').href, '_blank');
  current++;
}
</script>
</body>
</html>
`))

type helperItem struct {
	Title string
	URL   string
}

// WriteHelperPage renders the link-walkthrough page for events.
func WriteHelperPage(w io.Writer, events []Event) error {
	items := make([]helperItem, 0, len(events))
	for _, ev := range events {
		items = append(items, helperItem{Title: ev.Title, URL: EventURL(ev)})
	}
	return helperPageTmpl.Execute(w, items)
}
