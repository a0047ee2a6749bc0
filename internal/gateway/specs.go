package gateway

// Argument schema documents shared by registry entries. Kept as raw JSON
// so the table below stays a plain data listing.
const (
	schemaEmpty          = `{"type":"object","properties":{},"additionalProperties":false}`
	schemaNotebookID     = `{"type":"object","properties":{"notebook":{"type":"string","description":"Notebook ID"}},"required":["notebook"],"additionalProperties":true}`
	schemaNotebookIDName = `{"type":"object","properties":{"notebook":{"type":"string","description":"Notebook ID"},"name":{"type":"string","description":"Notebook name"}},"required":["notebook","name"],"additionalProperties":true}`
	schemaNotebookCreate = `{"type":"object","properties":{"name":{"type":"string","description":"Notebook name"}},"required":["name"],"additionalProperties":true}`
	schemaNotebookConf   = `{"type":"object","properties":{"notebook":{"type":"string","description":"Notebook ID"},"conf":{"type":"object","description":"Notebook config object"}},"required":["notebook","conf"],"additionalProperties":true}`
	schemaDocCreateMD    = `{"type":"object","properties":{"notebook":{"type":"string","description":"Notebook ID"},"path":{"type":"string","description":"Document path (hpath)"},"markdown":{"type":"string","description":"GFM markdown content"}},"required":["notebook","path","markdown"],"additionalProperties":true}`
	schemaDocRename      = `{"type":"object","properties":{"notebook":{"type":"string","description":"Notebook ID"},"path":{"type":"string","description":"Document path"},"title":{"type":"string","description":"New document title"}},"required":["notebook","path","title"],"additionalProperties":true}`
	schemaDocRenameByID  = `{"type":"object","properties":{"id":{"type":"string","description":"Document ID"},"title":{"type":"string","description":"New document title"}},"required":["id","title"],"additionalProperties":true}`
	schemaDocRemove      = `{"type":"object","properties":{"notebook":{"type":"string","description":"Notebook ID"},"path":{"type":"string","description":"Document path"}},"required":["notebook","path"],"additionalProperties":true}`
	schemaIDOnly         = `{"type":"object","properties":{"id":{"type":"string","description":"Block or document ID"}},"required":["id"],"additionalProperties":true}`
	schemaDocMove        = `{"type":"object","properties":{"fromPaths":{"type":"array","items":{"type":"string"},"description":"Source document paths"},"toNotebook":{"type":"string","description":"Target notebook ID"},"toPath":{"type":"string","description":"Target path"}},"required":["fromPaths","toNotebook","toPath"],"additionalProperties":true}`
	schemaDocMoveByID    = `{"type":"object","properties":{"fromIDs":{"type":"array","items":{"type":"string"},"description":"Source document IDs"},"toID":{"type":"string","description":"Target parent doc ID or notebook ID"}},"required":["fromIDs","toID"],"additionalProperties":true}`
	schemaHPathByPath    = `{"type":"object","properties":{"notebook":{"type":"string","description":"Notebook ID"},"path":{"type":"string","description":"Document path"}},"required":["notebook","path"],"additionalProperties":true}`
	schemaIDsByHPath     = `{"type":"object","properties":{"path":{"type":"string","description":"Human-readable path"},"notebook":{"type":"string","description":"Notebook ID"}},"required":["path","notebook"],"additionalProperties":true}`
	schemaBlockInsert    = `{"type":"object","properties":{"dataType":{"type":"string","description":"markdown or dom"},"data":{"type":"string","description":"Content to insert"},"nextID":{"type":"string","description":"Next block ID"},"previousID":{"type":"string","description":"Previous block ID"},"parentID":{"type":"string","description":"Parent block ID"}},"required":["dataType","data"],"additionalProperties":true}`
	schemaBlockPrepend   = `{"type":"object","properties":{"dataType":{"type":"string","description":"markdown or dom"},"data":{"type":"string","description":"Content to insert"},"parentID":{"type":"string","description":"Parent block ID"}},"required":["dataType","data","parentID"],"additionalProperties":true}`
	schemaBlockUpdate    = `{"type":"object","properties":{"dataType":{"type":"string","description":"markdown or dom"},"data":{"type":"string","description":"Updated content"},"id":{"type":"string","description":"Block ID"}},"required":["dataType","data","id"],"additionalProperties":true}`
	schemaBlockMove      = `{"type":"object","properties":{"id":{"type":"string","description":"Block ID"},"previousID":{"type":"string","description":"Previous block ID"},"parentID":{"type":"string","description":"Parent block ID"}},"required":["id"],"additionalProperties":true}`
	schemaBlockXferRef   = `{"type":"object","properties":{"fromID":{"type":"string","description":"Def block ID"},"toID":{"type":"string","description":"Target block ID"},"refIDs":{"type":"array","items":{"type":"string"},"description":"Optional ref block IDs"}},"required":["fromID","toID"],"additionalProperties":true}`
	schemaAttrSet        = `{"type":"object","properties":{"id":{"type":"string","description":"Block ID"},"attrs":{"type":"object","description":"Attributes map"}},"required":["id","attrs"],"additionalProperties":true}`
	schemaSQLQuery       = `{"type":"object","properties":{"stmt":{"type":"string","description":"SQL statement"}},"required":["stmt"],"additionalProperties":true}`
	schemaTemplateRender = `{"type":"object","properties":{"id":{"type":"string","description":"Document ID"},"path":{"type":"string","description":"Template file absolute path"}},"required":["id","path"],"additionalProperties":true}`
	schemaTemplateSprig  = `{"type":"object","properties":{"template":{"type":"string","description":"Template content"}},"required":["template"],"additionalProperties":true}`
	schemaFilePath       = `{"type":"object","properties":{"path":{"type":"string","description":"Path under workspace"}},"required":["path"],"additionalProperties":true}`
	schemaFilePut        = `{"type":"object","properties":{"path":{"type":"string","description":"Path under workspace"},"is_dir":{"type":"boolean","description":"Create directory only"},"mod_time":{"type":"integer","description":"Unix time (seconds)"},"file_path":{"type":"string","description":"Local file path to upload"}},"required":["path"],"additionalProperties":true}`
	schemaFileRename     = `{"type":"object","properties":{"path":{"type":"string","description":"Path under workspace"},"newPath":{"type":"string","description":"New path under workspace"}},"required":["path","newPath"],"additionalProperties":true}`
	schemaFileReadDir    = `{"type":"object","properties":{"path":{"type":"string","description":"Directory path under workspace"}},"required":["path"],"additionalProperties":true}`
	schemaExportMD       = `{"type":"object","properties":{"id":{"type":"string","description":"Doc block ID"}},"required":["id"],"additionalProperties":true}`
	schemaExportRes      = `{"type":"object","properties":{"paths":{"type":"array","items":{"type":"string"},"description":"Paths to export"},"name":{"type":"string","description":"Optional zip name"}},"required":["paths"],"additionalProperties":true}`
	schemaPandoc         = `{"type":"object","properties":{"dir":{"type":"string","description":"Working directory name"},"args":{"type":"array","items":{"type":"string"},"description":"Pandoc CLI args"}},"required":["dir","args"],"additionalProperties":true}`
	schemaNotify         = `{"type":"object","properties":{"msg":{"type":"string","description":"Message text"},"timeout":{"type":"integer","description":"Timeout in ms"}},"required":["msg"],"additionalProperties":true}`
	schemaForwardProxy   = `{"type":"object","properties":{"url":{"type":"string","description":"Target URL"},"method":{"type":"string","description":"HTTP method"},"timeout":{"type":"integer","description":"Timeout in ms"},"contentType":{"type":"string","description":"Content-Type"},"headers":{"type":"array","items":{"type":"object"},"description":"Headers list"},"payload":{"type":"object","description":"Payload object or string"},"payloadEncoding":{"type":"string","description":"Payload encoding"},"responseEncoding":{"type":"string","description":"Response body encoding"}},"required":["url"],"additionalProperties":true}`
	schemaAssetUpload    = `{"type":"object","properties":{"assets_dir_path":{"type":"string","description":"Target assets dir (e.g. /assets/)"},"files":{"type":"array","items":{"type":"string"},"description":"Local file paths"}},"required":["files"],"additionalProperties":true}`
)

// toolTable is the fixed catalog: one entry per kernel endpoint, each a
// direct 1:1 mapping. The registry is built from this table at startup.
var toolTable = []ToolSpec{
	{Name: "siyuan_notebook_ls", Endpoint: "/api/notebook/lsNotebooks", Kind: KindJSON, Description: "List notebooks. No parameters. Use to obtain notebook IDs.", Schema: schemaEmpty},
	{Name: "siyuan_notebook_open", Endpoint: "/api/notebook/openNotebook", Kind: KindJSON, Description: "Open a notebook by ID.", Schema: schemaNotebookID},
	{Name: "siyuan_notebook_close", Endpoint: "/api/notebook/closeNotebook", Kind: KindJSON, Description: "Close a notebook by ID.", Schema: schemaNotebookID},
	{Name: "siyuan_notebook_rename", Endpoint: "/api/notebook/renameNotebook", Kind: KindJSON, Description: "Rename a notebook by ID.", Schema: schemaNotebookIDName},
	{Name: "siyuan_notebook_create", Endpoint: "/api/notebook/createNotebook", Kind: KindJSON, Description: "Create a new notebook.", Schema: schemaNotebookCreate},
	{Name: "siyuan_notebook_remove", Endpoint: "/api/notebook/removeNotebook", Kind: KindJSON, Description: "Remove a notebook by ID.", Schema: schemaNotebookID},
	{Name: "siyuan_notebook_get_conf", Endpoint: "/api/notebook/getNotebookConf", Kind: KindJSON, Description: "Fetch notebook configuration by ID.", Schema: schemaNotebookID},
	{Name: "siyuan_notebook_set_conf", Endpoint: "/api/notebook/setNotebookConf", Kind: KindJSON, Description: "Save notebook configuration by ID.", Schema: schemaNotebookConf},
	{Name: "siyuan_doc_create_md", Endpoint: "/api/filetree/createDocWithMd", Kind: KindJSON, Description: "Create a document with Markdown content.", Schema: schemaDocCreateMD},
	{Name: "siyuan_doc_rename", Endpoint: "/api/filetree/renameDoc", Kind: KindJSON, Description: "Rename a document by notebook + path.", Schema: schemaDocRename},
	{Name: "siyuan_doc_rename_by_id", Endpoint: "/api/filetree/renameDocByID", Kind: KindJSON, Description: "Rename a document by ID.", Schema: schemaDocRenameByID},
	{Name: "siyuan_doc_remove", Endpoint: "/api/filetree/removeDoc", Kind: KindJSON, Description: "Remove a document by notebook + path.", Schema: schemaDocRemove},
	{Name: "siyuan_doc_remove_by_id", Endpoint: "/api/filetree/removeDocByID", Kind: KindJSON, Description: "Remove a document by ID.", Schema: schemaIDOnly},
	{Name: "siyuan_doc_move", Endpoint: "/api/filetree/moveDocs", Kind: KindJSON, Description: "Move documents by source paths to a target notebook/path.", Schema: schemaDocMove},
	{Name: "siyuan_doc_move_by_id", Endpoint: "/api/filetree/moveDocsByID", Kind: KindJSON, Description: "Move documents by IDs to a target parent ID or notebook ID.", Schema: schemaDocMoveByID},
	{Name: "siyuan_doc_get_hpath_by_path", Endpoint: "/api/filetree/getHPathByPath", Kind: KindJSON, Description: "Get human-readable path from notebook + storage path.", Schema: schemaHPathByPath},
	{Name: "siyuan_doc_get_hpath_by_id", Endpoint: "/api/filetree/getHPathByID", Kind: KindJSON, Description: "Get human-readable path from block/document ID.", Schema: schemaIDOnly},
	{Name: "siyuan_doc_get_path_by_id", Endpoint: "/api/filetree/getPathByID", Kind: KindJSON, Description: "Get storage path and notebook ID from block/document ID.", Schema: schemaIDOnly},
	{Name: "siyuan_doc_get_ids_by_hpath", Endpoint: "/api/filetree/getIDsByHPath", Kind: KindJSON, Description: "Get IDs from human-readable path + notebook ID.", Schema: schemaIDsByHPath},
	{Name: "siyuan_asset_upload", Endpoint: "/api/asset/upload", Kind: KindAssetUpload, Description: "Upload assets from local files. Uses multipart. Params: assets_dir_path, files[].", Schema: schemaAssetUpload},
	{Name: "siyuan_block_insert", Endpoint: "/api/block/insertBlock", Kind: KindJSON, Description: "Insert blocks using nextID/previousID/parentID anchors.", Schema: schemaBlockInsert},
	{Name: "siyuan_block_prepend", Endpoint: "/api/block/prependBlock", Kind: KindJSON, Description: "Prepend blocks to parentID.", Schema: schemaBlockPrepend},
	{Name: "siyuan_block_append", Endpoint: "/api/block/appendBlock", Kind: KindJSON, Description: "Append blocks to parentID.", Schema: schemaBlockPrepend},
	{Name: "siyuan_block_update", Endpoint: "/api/block/updateBlock", Kind: KindJSON, Description: "Update a block by ID.", Schema: schemaBlockUpdate},
	{Name: "siyuan_block_delete", Endpoint: "/api/block/deleteBlock", Kind: KindJSON, Description: "Delete a block by ID.", Schema: schemaIDOnly},
	{Name: "siyuan_block_move", Endpoint: "/api/block/moveBlock", Kind: KindJSON, Description: "Move a block with previousID/parentID anchors.", Schema: schemaBlockMove},
	{Name: "siyuan_block_fold", Endpoint: "/api/block/foldBlock", Kind: KindJSON, Description: "Fold a block by ID.", Schema: schemaIDOnly},
	{Name: "siyuan_block_unfold", Endpoint: "/api/block/unfoldBlock", Kind: KindJSON, Description: "Unfold a block by ID.", Schema: schemaIDOnly},
	{Name: "siyuan_block_get_kramdown", Endpoint: "/api/block/getBlockKramdown", Kind: KindJSON, Description: "Get block kramdown by ID.", Schema: schemaIDOnly},
	{Name: "siyuan_block_get_children", Endpoint: "/api/block/getChildBlocks", Kind: KindJSON, Description: "List child blocks by parent ID.", Schema: schemaIDOnly},
	{Name: "siyuan_block_transfer_ref", Endpoint: "/api/block/transferBlockRef", Kind: KindJSON, Description: "Transfer block references from one def block to another.", Schema: schemaBlockXferRef},
	{Name: "siyuan_attr_set", Endpoint: "/api/attr/setBlockAttrs", Kind: KindJSON, Description: "Set block attributes.", Schema: schemaAttrSet},
	{Name: "siyuan_attr_get", Endpoint: "/api/attr/getBlockAttrs", Kind: KindJSON, Description: "Get block attributes by ID.", Schema: schemaIDOnly},
	{Name: "siyuan_sql_query", Endpoint: "/api/query/sql", Kind: KindJSON, Description: "Execute SQL query against SiYuan database.", Schema: schemaSQLQuery},
	{Name: "siyuan_sql_flush", Endpoint: "/api/sqlite/flushTransaction", Kind: KindJSON, Description: "Flush the current SQLite transaction. No parameters.", Schema: schemaEmpty},
	{Name: "siyuan_template_render", Endpoint: "/api/template/render", Kind: KindJSON, Description: "Render a template file for a document.", Schema: schemaTemplateRender},
	{Name: "siyuan_template_render_sprig", Endpoint: "/api/template/renderSprig", Kind: KindJSON, Description: "Render a Sprig template string.", Schema: schemaTemplateSprig},
	{Name: "siyuan_file_get", Endpoint: "/api/file/getFile", Kind: KindGetFile, Description: "Download a file. Returns body_base64 + content_type.", Schema: schemaFilePath},
	{Name: "siyuan_file_put", Endpoint: "/api/file/putFile", Kind: KindPutFile, Description: "Upload a file or create a directory (multipart). Params: path, is_dir, mod_time, file_path.", Schema: schemaFilePut},
	{Name: "siyuan_file_remove", Endpoint: "/api/file/removeFile", Kind: KindJSON, Description: "Remove a file by workspace path.", Schema: schemaFilePath},
	{Name: "siyuan_file_rename", Endpoint: "/api/file/renameFile", Kind: KindJSON, Description: "Rename a file by workspace path.", Schema: schemaFileRename},
	{Name: "siyuan_file_read_dir", Endpoint: "/api/file/readDir", Kind: KindJSON, Description: "List files in a directory by workspace path.", Schema: schemaFileReadDir},
	{Name: "siyuan_export_md", Endpoint: "/api/export/exportMdContent", Kind: KindJSON, Description: "Export a document as Markdown content by ID.", Schema: schemaExportMD},
	{Name: "siyuan_export_resources", Endpoint: "/api/export/exportResources", Kind: KindJSON, Description: "Export files/folders to a zip; returns zip path.", Schema: schemaExportRes},
	{Name: "siyuan_convert_pandoc", Endpoint: "/api/convert/pandoc", Kind: KindJSON, Description: "Run pandoc conversion in a temp directory.", Schema: schemaPandoc},
	{Name: "siyuan_notify_msg", Endpoint: "/api/notification/pushMsg", Kind: KindJSON, Description: "Push a normal notification message.", Schema: schemaNotify},
	{Name: "siyuan_notify_err", Endpoint: "/api/notification/pushErrMsg", Kind: KindJSON, Description: "Push an error notification message.", Schema: schemaNotify},
	{Name: "siyuan_network_forward_proxy", Endpoint: "/api/network/forwardProxy", Kind: KindJSON, Description: "Forward proxy HTTP request through SiYuan.", Schema: schemaForwardProxy},
	{Name: "siyuan_system_boot_progress", Endpoint: "/api/system/bootProgress", Kind: KindJSON, Description: "Get system boot progress. No parameters.", Schema: schemaEmpty},
	{Name: "siyuan_system_version", Endpoint: "/api/system/version", Kind: KindJSON, Description: "Get system version. No parameters.", Schema: schemaEmpty},
	{Name: "siyuan_system_current_time", Endpoint: "/api/system/currentTime", Kind: KindJSON, Description: "Get system current time (ms). No parameters.", Schema: schemaEmpty},
}
