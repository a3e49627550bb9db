package api

import (
	"html/template"
	"net/http"

	"github.com/pigeonworks-llc/tempura/internal/config"
)

// IndexHandler serves the single-page billing UI.
type IndexHandler struct {
	tmpl *template.Template
	cfg  *config.Config
}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler(cfg *config.Config) *IndexHandler {
	return &IndexHandler{
		tmpl: template.Must(template.New("index").Parse(indexHTML)),
		cfg:  cfg,
	}
}

type indexData struct {
	Name      string
	Address   string
	Tables    []string
	MenuFile  string
	BillsFile string
}

// Serve handles GET /.
func (h *IndexHandler) Serve(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Name:      h.cfg.Restaurant.Name,
		Address:   h.cfg.Restaurant.Address,
		Tables:    h.cfg.Restaurant.Tables,
		MenuFile:  h.cfg.MenuFile,
		BillsFile: h.cfg.BillsFile,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to render page")
	}
}

const indexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width,initial-scale=1"/>
  <title>{{.Name}} — Local Billing</title>
  <style>
    body{font-family:Arial,Helvetica,sans-serif;background:#f4f6f8;margin:0;color:#111}
    header{background:#2c3e50;color:#fff;padding:16px;text-align:center}
    .brand{font-size:26px;font-weight:800;color:#f39c12}
    .container{max-width:1200px;margin:16px auto;padding:0 12px}
    input,select,button{padding:8px;border-radius:6px;border:1px solid #e6eef6}
    button{cursor:pointer;background:#2c3e50;color:#fff;border:0}
    .layout{display:grid;grid-template-columns:240px 1fr 420px;gap:12px;margin-top:14px}
    .card{background:#fff;padding:12px;border-radius:8px;box-shadow:0 8px 20px rgba(0,0,0,0.04)}
    .tableBtn{padding:10px;border:1px solid #eef2f7;border-radius:6px;margin-bottom:8px;cursor:pointer;display:flex;justify-content:space-between}
    .tableBtn.active{background:#fbf6ec;border-color:#f1c40f}
    .items{display:flex;flex-wrap:wrap;gap:8px;margin-top:12px}
    .item{padding:10px;border:1px solid #eef7ff;border-radius:6px;min-width:160px;cursor:pointer;background:#fdfefe}
    table{width:100%;border-collapse:collapse}
    th,td{padding:8px;border-bottom:1px solid #f1f3f6}
    .small{font-size:13px;color:#666}
    .actions{display:flex;gap:8px;margin-top:12px}
    @media(max-width:980px){ .layout{grid-template-columns:1fr} }
  </style>
</head>
<body>
<header><div class="brand">{{.Name}}</div><div>{{.Address}}</div></header>
<div class="container">
  <div class="layout">
    <div class="card">
      <div style="font-weight:800">Tables</div>
      <div class="small">Click to open a table</div>
      <div id="tables" style="margin-top:12px"></div>
      <div class="actions">
        <button onclick="window.location='/download/{{.MenuFile}}'">Download {{.MenuFile}}</button>
        <button onclick="window.location='/download/{{.BillsFile}}'">Download {{.BillsFile}}</button>
      </div>
    </div>

    <div class="card">
      <div style="display:flex;justify-content:space-between;align-items:center">
        <div>
          <div id="activeTableLabel" style="font-weight:800">Select a table</div>
          <div class="small">Menu loaded from {{.MenuFile}}</div>
        </div>
        <div>
          <select id="categorySelect" onchange="renderItems()"></select>
          <input id="search" placeholder="Search item..." oninput="renderItems()" style="width:220px;margin-left:8px"/>
        </div>
      </div>
      <div id="items" class="items"></div>
      <div style="margin-top:12px">
        <input id="m_cat" placeholder="Category"/>
        <input id="m_item" placeholder="Item name"/>
        <input id="m_price" placeholder="Price" type="number"/>
        <button onclick="addMenu()">Add Menu Item</button>
      </div>
    </div>

    <div class="card">
      <div style="display:flex;justify-content:space-between;align-items:center">
        <div style="font-weight:800">Cart</div>
        <div id="cartTableLabel" class="small">No table</div>
      </div>
      <table id="cartTable"><thead><tr><th>Item</th><th>Qty</th><th>Rate</th><th>Amt</th></tr></thead><tbody></tbody></table>
      <div style="display:flex;justify-content:space-between;margin-top:8px">
        <div class="small">Items: <span id="itemsCount">0</span></div>
        <div style="font-weight:800" id="grandTotal">0.00</div>
      </div>
      <div class="actions">
        <select id="paymentSelect"><option>Cash</option><option>Card</option><option>UPI</option></select>
        <button onclick="saveBill()">Save Bill</button>
        <button onclick="showBills()">Bill History</button>
      </div>
      <div id="billsArea" style="display:none;margin-top:12px">
        <input id="billFilter" placeholder="Filter bills..." oninput="renderBills()"/>
        <table id="billsTable"><thead><tr><th>No</th><th>Date</th><th>Table</th><th>Total</th><th>Pay</th><th>Items</th></tr></thead><tbody></tbody></table>
      </div>
    </div>
  </div>
</div>

<script>
let MENU = {};
let ACTIVE_TABLE = null;
const CARTS = {};

function renderTables(){
  const div = document.getElementById('tables'); div.innerHTML = '';
  window.TABLES.forEach(t=>{
    const b = document.createElement('div');
    b.className = 'tableBtn' + (t===ACTIVE_TABLE ? ' active' : '');
    const n = Object.keys(CARTS[t]||{}).length;
    b.innerHTML = '<span>'+t+'</span><span class="small">'+(n? n+' items':'')+'</span>';
    b.onclick = ()=>{ ACTIVE_TABLE=t; CARTS[t]=CARTS[t]||{}; renderTables(); updateCartUI();
      document.getElementById('activeTableLabel').textContent=t;
      document.getElementById('cartTableLabel').textContent=t; };
    div.appendChild(b);
  });
}

async function loadMenu(){
  const res = await fetch('/api/menu');
  MENU = await res.json();
  const sel = document.getElementById('categorySelect'); sel.innerHTML = '';
  const all = document.createElement('option'); all.value=''; all.textContent='All categories';
  sel.appendChild(all);
  Object.keys(MENU).forEach(c=>{
    const o = document.createElement('option'); o.value=c; o.textContent=c; sel.appendChild(o);
  });
  renderItems();
}

function renderItems(){
  const cat = document.getElementById('categorySelect').value;
  const q = (document.getElementById('search').value||'').toLowerCase();
  const div = document.getElementById('items'); div.innerHTML = '';
  Object.entries(MENU).forEach(([c, items])=>{
    if(cat && c!==cat) return;
    items.forEach(it=>{
      if(q && !it.name.toLowerCase().includes(q)) return;
      const d = document.createElement('div');
      d.className = 'item';
      d.innerHTML = '<div style="font-weight:700">'+it.name+'</div><div class="small">'+c+' — '+Number(it.price).toFixed(2)+'</div>';
      d.onclick = ()=>addToCart(it);
      div.appendChild(d);
    });
  });
}

function addToCart(it){
  if(!ACTIVE_TABLE) return alert('Open a table');
  const cart = CARTS[ACTIVE_TABLE];
  const cur = cart[it.name] || { name: it.name, qty: 0, rate: Number(it.price) };
  cur.qty += 1; cur.amount = cur.qty * cur.rate;
  cart[it.name] = cur;
  renderTables(); updateCartUI();
}

function updateCartUI(){
  const tbody = document.querySelector('#cartTable tbody'); tbody.innerHTML = '';
  const cart = CARTS[ACTIVE_TABLE] || {};
  let total = 0, count = 0;
  Object.values(cart).forEach(it=>{
    total += it.amount; count += it.qty;
    const tr = document.createElement('tr');
    tr.innerHTML = '<td>'+it.name+'</td><td>'+it.qty+'</td><td>'+it.rate.toFixed(2)+'</td><td>'+it.amount.toFixed(2)+'</td>';
    tbody.appendChild(tr);
  });
  document.getElementById('itemsCount').textContent = count;
  document.getElementById('grandTotal').textContent = total.toFixed(2);
}

async function addMenu(){
  const payload = {
    category: document.getElementById('m_cat').value,
    name: document.getElementById('m_item').value,
    price: Number(document.getElementById('m_price').value)
  };
  const res = await fetch('/api/menu', { method:'POST', headers:{'Content-Type':'application/json'}, body: JSON.stringify(payload) });
  if(res.ok){ await loadMenu(); } else { alert('Failed to add menu item'); }
}

async function saveBill(){
  if(!ACTIVE_TABLE) return alert('Open a table');
  const cart = CARTS[ACTIVE_TABLE];
  const items = Object.values(cart).map(it=>({ name: it.name, qty: it.qty, rate: it.rate, amount: it.amount }));
  const total = items.reduce((s,i)=>s+i.amount,0);
  const nextRes = await fetch('/api/next_bill_no'); const j = await nextRes.json();
  const payload = { billNo: j.next, dateTime: new Date().toISOString(), table: ACTIVE_TABLE,
    payment: document.getElementById('paymentSelect').value, total: total, items: items };
  const res = await fetch('/api/bills', { method:'POST', headers:{'Content-Type':'application/json'}, body: JSON.stringify(payload) });
  if(res.ok){ CARTS[ACTIVE_TABLE] = {}; renderTables(); updateCartUI(); } else { alert('Failed to save bill'); }
}

async function showBills(){
  document.getElementById('billsArea').style.display = 'block';
  await renderBills();
}

async function renderBills(){
  const res = await fetch('/api/bills');
  const all = await res.json();
  const q = (document.getElementById('billFilter').value||'').toLowerCase();
  const tbody = document.querySelector('#billsTable tbody'); tbody.innerHTML = '';
  all.slice().reverse().forEach(b=>{
    const items = (b.items||[]).map(i=> i.name+'('+i.qty+')').join(', ');
    if(q && !(String(b.billNo).includes(q) || (b.table||'').toLowerCase().includes(q) || items.toLowerCase().includes(q))) return;
    const tr = document.createElement('tr');
    tr.innerHTML = '<td>'+b.billNo+'</td><td>'+b.dateTime+'</td><td>'+(b.table||'')+'</td><td>'+Number(b.total).toFixed(2)+'</td><td>'+(b.payment||'')+'</td><td>'+items+'</td>';
    tbody.appendChild(tr);
  });
}

window.TABLES = {{.Tables}};
renderTables();
loadMenu();
</script>
</body>
</html>
`
