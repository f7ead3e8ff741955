package web

import (
	"html/template"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/sirupsen/logrus"
)

var checkerTmpl = template.Must(template.New("checker").Parse(`
<html>
<head>
<title>Password Checker</title>
<style>
	body { font-family: sans-serif; background: #0f172a; color: #e2e8f0; max-width: 480px; margin: 40px auto; }
	input[type=password] { width: 100%; padding: 8px; font-size: 16px; }
	#meter-track { width: 100%; height: 10px; background: #1e293b; border-radius: 5px; margin-top: 10px; }
	#meter { width: 0%; height: 10px; border-radius: 5px; background: #22c55e; transition: width 0.2s; }
	#strength-line { margin-top: 8px; min-height: 1.2em; }
	#suggestions { color: #94a3b8; }
	button { margin-top: 12px; padding: 8px 16px; font-size: 14px; }
	#breach-line { margin-top: 10px; min-height: 1.2em; }
</style>
</head>
<body>
	<h1>Password Checker</h1>
	<input type="password" id="password" placeholder="Type a password" autocomplete="off">
	<div id="meter-track"><div id="meter"></div></div>
	<div id="strength-line"></div>
	<ul id="suggestions"></ul>
	<button id="breach-btn">Check against known breaches</button>
	<div id="breach-line"></div>
<script>
	var input = document.getElementById('password');
	var meter = document.getElementById('meter');
	var strengthLine = document.getElementById('strength-line');
	var suggestionList = document.getElementById('suggestions');
	var breachBtn = document.getElementById('breach-btn');
	var breachLine = document.getElementById('breach-line');
	var csrfToken = '{{.CSRFToken}}';

	// Monotonic token so a superseded in-flight check can never overwrite
	// the result of a newer one.
	var breachSeq = 0;

	function post(path, password) {
		return fetch(path, {
			method: 'POST',
			headers: {'Content-Type': 'application/json', 'X-CSRF-Token': csrfToken},
			body: JSON.stringify({password: password})
		});
	}

	input.addEventListener('input', function () {
		post('/api/password/strength', input.value)
			.then(function (resp) { return resp.json(); })
			.then(function (verdict) {
				meter.style.width = verdict.widthPercent + '%';
				meter.style.background = verdict.color;
				strengthLine.textContent = verdict.summary || '';
				suggestionList.innerHTML = '';
				(verdict.suggestions || []).forEach(function (entry) {
					var item = document.createElement('li');
					item.textContent = entry;
					suggestionList.appendChild(item);
				});
			});
	});

	breachBtn.addEventListener('click', function () {
		var seq = ++breachSeq;
		breachBtn.disabled = true;
		breachLine.style.color = '#e2e8f0';
		breachLine.textContent = 'Checking...';

		post('/api/password/breach', input.value)
			.then(function (resp) { return resp.json(); })
			.then(function (result) {
				if (seq !== breachSeq) { return; }
				if (result.error) {
					breachLine.style.color = '#f97316';
					breachLine.textContent = result.error;
					return;
				}
				breachLine.style.color = result.breached ? '#ef4444' : '#22c55e';
				breachLine.textContent = result.message;
			})
			.catch(function () {
				if (seq !== breachSeq) { return; }
				breachLine.style.color = '#f97316';
				breachLine.textContent = 'Error checking password. Try again later.';
			})
			.finally(function () {
				if (seq === breachSeq) { breachBtn.disabled = false; }
			});
	});
</script>
</body>
</html>
`))

type checkerData struct {
	CSRFToken string
}

func GetCheckerPage(logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		data := checkerData{
			CSRFToken: csrf.Token(r),
		}

		w.Header().Set("Content-Type", "text/html")
		if err := checkerTmpl.Execute(w, data); err != nil {
			logger.WithError(err).Error("error rendering template")
			http.Error(w, "Template Error", http.StatusInternalServerError)
		}
	}
}
