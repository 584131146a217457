package live

// clientScript is the thin browser client served at ClientScriptPath.
//
// It handles transport concerns only: it opens the patch stream, tracks
// sequence numbers, acknowledges received frames, and requests a resync
// when it detects a gap. A snapshot frame that arrives after the initial
// one means the server could not replay the gap, so the page reloads to
// pick up the fresh tree.
const clientScript = `(function () {
  "use strict";

  var FRAME_SNAPSHOT = 0x01;
  var FRAME_PATCHES = 0x02;
  var FRAME_CONTROL = 0x03;
  var FRAME_ACK = 0x04;
  var FRAME_ERROR = 0x05;

  var CONTROL_PING = 0x01;
  var CONTROL_PONG = 0x02;
  var CONTROL_RESYNC = 0x10;

  var ACK_EVERY = 10;

  var sessionID = window.__WEFT_SESSION__ || "";
  var lastSeq = 0;
  var gotSnapshot = false;
  var sinceAck = 0;
  var ws;

  function readUvarint(view, offset) {
    var result = 0, shift = 0, i = offset;
    for (;;) {
      var b = view.getUint8(i++);
      result += (b & 0x7f) * Math.pow(2, shift);
      if ((b & 0x80) === 0) return { value: result, next: i };
      shift += 7;
    }
  }

  function writeUvarint(bytes, value) {
    while (value >= 0x80) {
      bytes.push((value & 0x7f) | 0x80);
      value = Math.floor(value / 128);
    }
    bytes.push(value);
  }

  function sendFrame(type, payload) {
    var buf = new Uint8Array(4 + payload.length);
    buf[0] = type;
    buf[1] = 0;
    buf[2] = payload.length >> 8;
    buf[3] = payload.length & 0xff;
    buf.set(payload, 4);
    ws.send(buf);
  }

  function sendAck() {
    var payload = [];
    writeUvarint(payload, lastSeq);
    writeUvarint(payload, 100);
    sendFrame(FRAME_ACK, payload);
    sinceAck = 0;
  }

  function sendResync() {
    var payload = [CONTROL_RESYNC];
    writeUvarint(payload, lastSeq);
    sendFrame(FRAME_CONTROL, payload);
  }

  function onMessage(ev) {
    var view = new DataView(ev.data);
    if (view.byteLength < 4) return;
    var type = view.getUint8(0);

    if (type === FRAME_SNAPSHOT) {
      var snap = readUvarint(view, 4);
      if (gotSnapshot) {
        // Replay was not possible; reload to pick up the fresh tree.
        window.location.reload();
        return;
      }
      gotSnapshot = true;
      lastSeq = snap.value;
      return;
    }

    if (type === FRAME_PATCHES) {
      var seq = readUvarint(view, 4).value;
      if (seq <= lastSeq) return;
      if (seq !== lastSeq + 1) {
        sendResync();
        return;
      }
      lastSeq = seq;
      if (++sinceAck >= ACK_EVERY) sendAck();
      window.dispatchEvent(new CustomEvent("weft:patches", {
        detail: { seq: seq, frame: ev.data }
      }));
      return;
    }

    if (type === FRAME_ERROR) {
      var code = view.getUint8(4) << 8 | view.getUint8(5);
      var len = readUvarint(view, 6);
      var text = new TextDecoder().decode(
        new Uint8Array(ev.data, len.next, len.value));
      console.warn("weft: server error " + code + ": " + text);
      return;
    }

    if (type === FRAME_CONTROL) {
      var ct = view.getUint8(4);
      if (ct === CONTROL_PING) {
        var ts = readUvarint(view, 5);
        var payload = [CONTROL_PONG];
        writeUvarint(payload, ts.value);
        sendFrame(FRAME_CONTROL, payload);
      }
    }
  }

  function connect() {
    var proto = window.location.protocol === "https:" ? "wss:" : "ws:";
    var url = proto + "//" + window.location.host + "/live";
    if (sessionID) url += "?session=" + encodeURIComponent(sessionID);

    ws = new WebSocket(url);
    ws.binaryType = "arraybuffer";
    ws.onmessage = onMessage;
    ws.onclose = function () {
      setTimeout(connect, 1000);
    };
  }

  connect();
})();
`
