package html

// CSRFFetchScript copies the CSRF cookie into the X-CSRF-Token header of
// every unsafe same-origin fetch.
func CSRFFetchScript() string {
	return `<script>
(function () {
  function getCookie(name) {
    var prefix = name + "=";
    var parts = document.cookie ? document.cookie.split(";") : [];
    for (var i = 0; i < parts.length; i++) {
      var c = parts[i].trim();
      if (c.indexOf(prefix) === 0) return decodeURIComponent(c.substring(prefix.length));
    }
    return "";
  }

  var original = window.fetch;
  if (!original) return;
  window.fetch = function (input, init) {
    init = init || {};
    var method = (init.method || "GET").toUpperCase();
    if (method !== "GET" && method !== "HEAD" && method !== "OPTIONS") {
      var token = getCookie("X-CSRF-Token");
      var headers = new Headers(init.headers || {});
      if (token && !headers.has("X-CSRF-Token")) headers.set("X-CSRF-Token", token);
      init.headers = headers;
    }
    return original.call(this, input, init);
  };
})();
</script>`
}
