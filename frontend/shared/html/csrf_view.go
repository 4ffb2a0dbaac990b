package html

// CSRFFormScript copies the CSRF cookie into a hidden _csrf field of every
// POST form right before it is submitted, whichever button submitted it.
func CSRFFormScript() string {
	return `<script>
document.addEventListener("submit", function (ev) {
  var form = ev.target;
  if (!form || (form.method || "").toLowerCase() !== "post") return;
  var match = document.cookie.match(/(?:^|;\s*)X-CSRF-Token=([^;]*)/);
  if (!match) return;
  var field = form.querySelector("input[name='_csrf']");
  if (!field) {
    field = document.createElement("input");
    field.type = "hidden";
    field.name = "_csrf";
    form.appendChild(field);
  }
  field.value = decodeURIComponent(match[1]);
}, true);
</script>`
}
